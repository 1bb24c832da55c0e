package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/slugs"
	"github.com/aidanlsb/tourtag/internal/tour"
	"github.com/aidanlsb/tourtag/internal/ui"
)

var projectCategory string

var projectCmd = &cobra.Command{
	Use:   "project [tour] [venue]",
	Short: "Compose a tour project from human-readable names",
	Long: `Compose a valid tour project path from names as you would say them.

Names are lower-cased and slugged with underscores so each stays a single
project segment.

Examples:
  tourtag project "TMCK"                                   # tour.tmck
  tourtag project "TMCK" "The Pageant" --category advance  # tour.tmck.the_pageant.advance
  tourtag project --category logistics                     # tour.logistics
  task add "Confirm load-in" project:$(tourtag project TMCK "The Pageant")`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := slugs.ProjectInput{Category: projectCategory}
		if len(args) > 0 {
			in.Tour = args[0]
		}
		if len(args) > 1 {
			in.Venue = args[1]
		}

		project, err := slugs.ProjectPath(in)
		if err != nil {
			return handleError(ErrMissingArgument, err, "Usage: tourtag project <tour> [venue] [--category <name>]")
		}

		cats, _ := loadCategories()
		result := classifyProject(project, cats)

		var warnings []Warning
		if result.Kind == tour.KindCategory && in.Tour != "" {
			warnings = append(warnings, Warning{
				Code: WarnTourIsCategory,
				Message: fmt.Sprintf("%s is read as the %q category, not a tour; add a venue or category to file it under a tour",
					project, result.Category),
			})
		}
		if in.Category != "" && result.Category == "" {
			warnings = append(warnings, Warning{
				Code:    WarnCategoryMissing,
				Message: fmt.Sprintf("%q is not a known category; no tour.<category> tag will be added", slugs.Segment(in.Category)),
			})
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(result, warnings, nil)
			return nil
		}

		for _, w := range warnings {
			emitWarning(w)
		}
		// plain output so the command can be used in $(...)
		if stdoutIsTerminal() {
			fmt.Println(ui.Project(project))
			return nil
		}
		fmt.Println(project)
		return nil
	},
}

func init() {
	projectCmd.Flags().StringVarP(&projectCategory, "category", "c", "", "Category segment (e.g. advance)")
	rootCmd.AddCommand(projectCmd)
}
