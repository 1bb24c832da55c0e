package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/config"
	"github.com/aidanlsb/tourtag/internal/hook"
	"github.com/aidanlsb/tourtag/internal/ui"
)

var (
	// Global flags
	configPath     string
	categoriesFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tourtag",
	Short: "tourtag - tour project tagging for Taskwarrior",
	Long: `tourtag keeps Taskwarrior tags in sync with tour projects.

Projects under the "tour" root (tour.<tour>.<venue>.<category>) imply tags:
work, tour, the tour name and tour.<category>. Installed as an on-add and
on-modify hook, tourtag adds those tags when a task is saved, removes the
ones a previous project implied, and rejects the bare "tour" project.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// hook loads its own config so a broken file never blocks Taskwarrior
		switch cmd.Name() {
		case "hook", "completion", "help", "version":
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		return nil
	},
}

// Execute runs the CLI. When the binary is invoked through an on-add* or
// on-modify* name it runs the hook directly.
func Execute() error {
	if hook.IsHookName(os.Args[0]) {
		rootCmd.SetArgs(append([]string{hookCmd.Name()}, os.Args[1:]...))
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&categoriesFlag, "categories", "", "Path to the category file (overrides categories_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

// getConfigPath returns the resolved global config path.
func getConfigPath() string {
	return resolvedConfigPath
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = loadConfigAllowMissing(resolvedPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}

	return loadedCfg, resolvedPath, nil
}

func loadConfigAllowMissing(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.Config{}, nil
	}
	return config.LoadFrom(path)
}
