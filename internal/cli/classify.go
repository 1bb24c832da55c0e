package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/reconcile"
	"github.com/aidanlsb/tourtag/internal/tour"
	"github.com/aidanlsb/tourtag/internal/ui"
)

type classifyResult struct {
	Project   string    `json:"project"`
	Kind      tour.Kind `json:"kind"`
	Tour      string    `json:"tour,omitempty"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	Removable []string  `json:"removable"`
	Rejected  bool      `json:"rejected"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify <project>",
	Short: "Show the tags a project implies",
	Long: `Show how a project is interpreted and which tags it implies.

"tags" are added when a task enters the project. "removable" are the tags
taken away when a task leaves it; work is never removed.

Examples:
  tourtag classify tour.tmck
  tourtag classify tour.tmck.the_pageant.advance
  tourtag classify tour.logistics --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project := strings.TrimSpace(args[0])
		if project == "" {
			return handleErrorMsg(ErrMissingArgument, "specify a project", "Usage: tourtag classify <project>")
		}

		cats, src := loadCategories()
		result := classifyProject(project, cats)

		if isJSONOutput() {
			outputSuccessWithWarnings(result, categoryWarnings(src), nil)
			return nil
		}

		tbl := ui.NewTable(2)
		tbl.AddRow(ui.Muted.Render("project"), ui.Project(result.Project))
		tbl.AddRow(ui.Muted.Render("kind"), string(result.Kind))
		if result.Tour != "" {
			tbl.AddRow(ui.Muted.Render("tour"), result.Tour)
		}
		if result.Category != "" {
			tbl.AddRow(ui.Muted.Render("category"), result.Category)
		}
		tbl.AddRow(ui.Muted.Render("tags"), ui.Tags("+", result.Tags))
		tbl.AddRow(ui.Muted.Render("removable"), ui.Tags("-", result.Removable))
		fmt.Print(tbl.String())

		if result.Rejected {
			fmt.Println()
			fmt.Println(reconcile.RejectionMessage)
		}
		return nil
	},
}

func classifyProject(project string, cats tour.CategorySet) classifyResult {
	path := tour.ParsePath(project)
	kind, name, category := tour.Describe(path, cats)
	derived := tour.Classify(path, cats)
	return classifyResult{
		Project:   project,
		Kind:      kind,
		Tour:      name,
		Category:  category,
		Tags:      derived.All.Sorted(),
		Removable: derived.Removable.Sorted(),
		Rejected:  path.IsBareRoot(),
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
