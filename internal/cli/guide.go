package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/tourtag/docs"
	"github.com/aidanlsb/tourtag/internal/ui"
)

var (
	guideDisplayContext = ui.NewDisplayContext
	guideMarkdownRender = ui.RenderMarkdown
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Read the bundled guides",
	Long: `Read the guides bundled into the tourtag binary.

Without a topic, lists the available guides. In a terminal the guide is
rendered; otherwise the Markdown source is printed.

Examples:
  tourtag guide
  tourtag guide naming
  tourtag guide categories --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := builtindocs.Topics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild tourtag so bundled guides are available")
		}

		if len(args) == 0 {
			if isJSONOutput() {
				outputSuccess(map[string]interface{}{"topics": topics}, &Meta{Count: len(topics)})
				return nil
			}
			tbl := ui.NewTable(2)
			tbl.SetIndent("  ")
			for _, t := range topics {
				tbl.AddRow(ui.Accent.Render(t.ID), t.Title)
			}
			fmt.Println(ui.Header("Guides"))
			fmt.Print(tbl.String())
			fmt.Println()
			fmt.Println(ui.Hint("Run 'tourtag guide <topic>' to read one."))
			return nil
		}

		id := strings.ToLower(strings.TrimSpace(args[0]))
		topic, content, err := builtindocs.Read(id)
		if err != nil {
			available := make([]string, 0, len(topics))
			for _, t := range topics {
				available = append(available, t.ID)
			}
			return handleErrorMsg(ErrInvalidInput,
				fmt.Sprintf("unknown guide topic: %s", args[0]),
				fmt.Sprintf("Available: %s", strings.Join(available, ", ")))
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"topic":   topic.ID,
				"title":   topic.Title,
				"path":    topic.Path,
				"content": content,
			}, nil)
			return nil
		}

		rendered := content
		display := guideDisplayContext()
		if display.IsTTY {
			if out, renderErr := guideMarkdownRender(content, display.MarkdownWidth()); renderErr == nil {
				rendered = out
			}
		}
		fmt.Print(rendered)
		if !strings.HasSuffix(rendered, "\n") {
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
