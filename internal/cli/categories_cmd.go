package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/categories"
	"github.com/aidanlsb/tourtag/internal/tour"
	"github.com/aidanlsb/tourtag/internal/ui"
)

var categoriesRemoveConfirm bool

// categoriesPath returns the category file the current command works on.
func categoriesPath() string {
	return getConfig().CategoriesPath(categoriesFlag, "")
}

func loadCategories() (tour.CategorySet, categories.Source) {
	return categories.Load(categoriesPath())
}

// refuseUnreadable reports an edit that would overwrite a category file Load
// could not read.
func refuseUnreadable(src categories.Source) error {
	return handleErrorWithDetails(ErrConfigInvalid,
		fmt.Sprintf("cannot edit %s: %s", src.Path, src.Reason),
		"Fix or remove the file, then re-run",
		src)
}

// categoryWarnings reports a fallback to the built-in defaults when the
// configured file exists but could not be used.
func categoryWarnings(src categories.Source) []Warning {
	if src.Origin != categories.OriginDefault || src.Reason == categories.ReasonMissing {
		return nil
	}
	return []Warning{{
		Code:    WarnCategoriesDefault,
		Message: fmt.Sprintf("using default categories: %s", src.Reason),
		Path:    src.Path,
	}}
}

// normalizeCategoryNames lower-cases and de-duplicates names, rejecting any
// that could not be a single project segment.
func normalizeCategoryNames(args []string) ([]string, error) {
	seen := make(map[string]bool, len(args))
	names := make([]string, 0, len(args))
	for _, arg := range args {
		name := strings.ToLower(strings.TrimSpace(arg))
		if name == "" {
			return nil, fmt.Errorf("category names cannot be empty")
		}
		if strings.Contains(name, tour.Delimiter) || strings.ContainsAny(name, " \t#") {
			return nil, fmt.Errorf("invalid category %q: must be a single project segment", arg)
		}
		if name == tour.RootMarker {
			return nil, fmt.Errorf("invalid category %q: reserved project root", arg)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Inspect and edit the tour category list",
	Long: `Inspect and edit the category list used to recognize tour.<category>
projects.

The list is read from --categories, then categories_file in config.toml,
then tour-categories.txt in the Taskwarrior data directory. When none of
those yields a category the defaults (logistics, advance) are used.`,
	Args: cobra.NoArgs,
	RunE: runCategoriesList,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recognized categories",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesList,
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	cats, src := loadCategories()
	names := cats.Names()

	if isJSONOutput() {
		outputSuccessWithWarnings(map[string]interface{}{
			"categories": names,
			"source":     src,
		}, categoryWarnings(src), &Meta{Count: len(names)})
		return nil
	}

	for _, w := range categoryWarnings(src) {
		emitWarning(w)
	}

	fmt.Printf("%s %s\n", ui.Header("Categories"), ui.Hint(ui.Count(len(names), "category", "categories")))
	list := ui.NewList()
	for _, name := range names {
		list.Add(ui.Accent.Render(name) + ui.Hint("  "+tour.CategoryTag(name)))
	}
	fmt.Print(list.String())
	fmt.Println(ui.Hint(describeSource(src)))
	return nil
}

var categoriesPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which category file is in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, src := loadCategories()

		if isJSONOutput() {
			outputSuccess(src, nil)
			return nil
		}

		fmt.Println(src.Path)
		fmt.Println(ui.Hint(describeSource(src)))
		return nil
	},
}

func describeSource(src categories.Source) string {
	if src.Origin == categories.OriginFile {
		return "source: " + src.Path
	}
	return fmt.Sprintf("source: built-in defaults (%s: %s)", src.Path, src.Reason)
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Add one or more categories",
	Long: `Add categories to the category file, creating it if needed.

When the file does not exist yet, the defaults are written along with the
new names so existing tour.logistics / tour.advance projects keep working.

Examples:
  tourtag categories add merch
  tourtag categories add merch travel`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := normalizeCategoryNames(args)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Use a single lower-case word such as 'merch'")
		}

		cats, src := loadCategories()
		if src.Unreadable() {
			return refuseUnreadable(src)
		}
		current := cats.Names()
		var added []string
		var warnings []Warning
		for _, name := range names {
			if cats.Contains(name) {
				warnings = append(warnings, Warning{
					Code:    WarnCategoryExists,
					Message: fmt.Sprintf("category %q already present", name),
				})
				continue
			}
			added = append(added, name)
		}

		updated := tour.NewCategorySet(append(current, added...)...)
		if len(added) > 0 {
			if err := categories.Save(src.Path, updated); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		return outputCategoryChange(src.Path, added, nil, updated, warnings)
	},
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <name>...",
	Short: "Remove one or more categories",
	Long: `Remove categories from the category file.

Tags already on tasks are not changed. Without --confirm the command asks
for confirmation in a terminal and only previews otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := normalizeCategoryNames(args)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		cats, src := loadCategories()
		if src.Unreadable() {
			return refuseUnreadable(src)
		}
		drop := make(map[string]bool, len(names))
		var removed []string
		var warnings []Warning
		for _, name := range names {
			if !cats.Contains(name) {
				warnings = append(warnings, Warning{
					Code:    WarnCategoryMissing,
					Message: fmt.Sprintf("category %q not present", name),
				})
				continue
			}
			drop[name] = true
			removed = append(removed, name)
		}

		keep := make([]string, 0, cats.Len())
		for _, name := range cats.Names() {
			if !drop[name] {
				keep = append(keep, name)
			}
		}
		if len(removed) > 0 && len(keep) == 0 {
			return handleErrorMsg(ErrInvalidInput,
				"cannot remove every category",
				"An empty file falls back to the defaults; delete the file instead to restore them")
		}
		updated := tour.NewCategorySet(keep...)

		if len(removed) == 0 {
			return outputCategoryChange(src.Path, nil, nil, cats, warnings)
		}

		if !categoriesRemoveConfirm {
			prompt := fmt.Sprintf("Remove %s from %s?", strings.Join(removed, ", "), src.Path)
			if !promptForConfirm(prompt) {
				return outputCategoryPreview(src.Path, removed, updated, warnings)
			}
		}

		if err := categories.Save(src.Path, updated); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		return outputCategoryChange(src.Path, nil, removed, updated, warnings)
	},
}

func outputCategoryChange(path string, added, removed []string, set tour.CategorySet, warnings []Warning) error {
	sort.Strings(added)
	sort.Strings(removed)

	if isJSONOutput() {
		outputSuccessWithWarnings(map[string]interface{}{
			"path":       path,
			"added":      emptyIfNil(added),
			"removed":    emptyIfNil(removed),
			"categories": set.Names(),
		}, warnings, &Meta{Count: set.Len()})
		return nil
	}

	for _, w := range warnings {
		emitWarning(w)
	}
	switch {
	case len(added) > 0:
		fmt.Println(ui.Successf("Added %s to %s", strings.Join(added, ", "), ui.FilePath(path)))
	case len(removed) > 0:
		fmt.Println(ui.Successf("Removed %s from %s", strings.Join(removed, ", "), ui.FilePath(path)))
	default:
		fmt.Println(ui.Info("No changes"))
	}
	return nil
}

func outputCategoryPreview(path string, removed []string, set tour.CategorySet, warnings []Warning) error {
	if isJSONOutput() {
		outputSuccessWithWarnings(map[string]interface{}{
			"mode":       "preview",
			"path":       path,
			"removed":    removed,
			"categories": set.Names(),
		}, warnings, nil)
		return nil
	}

	for _, w := range warnings {
		emitWarning(w)
	}
	fmt.Printf("Preview remove from %s:\n", path)
	for _, name := range removed {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Println("Re-run with --confirm to apply.")
	return nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func init() {
	categoriesRemoveCmd.Flags().BoolVar(&categoriesRemoveConfirm, "confirm", false, "Apply without prompting")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesPathCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}
