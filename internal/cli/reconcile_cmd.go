package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/reconcile"
	"github.com/aidanlsb/tourtag/internal/task"
	"github.com/aidanlsb/tourtag/internal/ui"
)

var (
	reconcileProject  string
	reconcilePrevious string
	reconcileTags     []string
)

type reconcileResult struct {
	Verdict  string       `json:"verdict"`
	Task     *task.Record `json:"task"`
	Tags     []string     `json:"tags"`
	Added    []string     `json:"added"`
	Removed  []string     `json:"removed"`
	Feedback string       `json:"feedback,omitempty"`
	Advised  bool         `json:"advised"`
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Preview how the hook would re-tag a task",
	Long: `Preview the hook's effect on a task without touching Taskwarrior.

With --previous the change is treated as a modification from that project;
without it, as a new task.

Examples:
  tourtag reconcile --project tour.tmck.the_pageant
  tourtag reconcile --previous tour.tmck.logistics --project tour.tmck.advance \
    --tags tour,work,tmck,tour.logistics
  tourtag reconcile --project tour`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, src := loadCategories()

		current := task.New(strings.TrimSpace(reconcileProject), reconcileTags...)
		transition := reconcile.Added(current)
		if cmd.Flags().Changed("previous") {
			transition = reconcile.Modified(task.New(strings.TrimSpace(reconcilePrevious)), current)
		}
		before := append([]string(nil), current.Tags...)

		out := reconcile.Reconcile(transition, cats)
		result := reconcileResult{
			Verdict:  out.Verdict.String(),
			Task:     out.Task,
			Tags:     emptyIfNil(out.Task.Tags),
			Added:    emptyIfNil(out.Added),
			Removed:  emptyIfNil(out.Removed),
			Feedback: out.Feedback,
			Advised:  out.Advised,
		}

		if out.Verdict == reconcile.Reject {
			if !isJSONOutput() {
				fmt.Fprintln(os.Stderr, out.Feedback)
			}
			return handleErrorWithDetails(ErrProjectRejected,
				fmt.Sprintf("project %q requires at least one sub-level", out.Task.Project),
				"Use tour.<tour>, tour.<category> or tour.<tour>.<venue>",
				result)
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(result, categoryWarnings(src), nil)
			return nil
		}

		tbl := ui.NewTable(2)
		if cmd.Flags().Changed("previous") {
			tbl.AddRow(ui.Muted.Render("previous"), ui.Project(reconcilePrevious))
		}
		tbl.AddRow(ui.Muted.Render("project"), ui.Project(out.Task.Project))
		tbl.AddRow(ui.Muted.Render("before"), ui.Tags("+", before))
		tbl.AddRow(ui.Muted.Render("after"), ui.Tags("+", out.Task.Tags))
		tbl.AddRow(ui.Muted.Render("verdict"), result.Verdict)
		fmt.Print(tbl.String())
		if out.Feedback != "" {
			fmt.Println()
			fmt.Println(out.Feedback)
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().StringVarP(&reconcileProject, "project", "p", "", "Project the task is saved with")
	reconcileCmd.Flags().StringVar(&reconcilePrevious, "previous", "", "Project the task had before (treats the run as a modification)")
	reconcileCmd.Flags().Var(newTagListValue(&reconcileTags), "tags", "Tags on the task, comma-separated or repeated")
	rootCmd.AddCommand(reconcileCmd)
}
