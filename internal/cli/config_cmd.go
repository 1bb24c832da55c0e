package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/categories"
	"github.com/aidanlsb/tourtag/internal/config"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	configExists bool
}

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	path := config.ResolveConfigPath(configPath)
	_, statErr := os.Stat(path)
	exists := statErr == nil

	loaded, err := loadConfigAllowMissing(path)
	if err != nil {
		return nil, err
	}
	return &globalConfigContext{cfg: loaded, configPath: path, configExists: exists}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	_, src := categories.Load(ctx.cfg.CategoriesPath(categoriesFlag, ""))
	return map[string]interface{}{
		"config_path":     ctx.configPath,
		"exists":          ctx.configExists,
		"categories_file": strings.TrimSpace(ctx.cfg.CategoriesFile),
		"hooks_dir":       strings.TrimSpace(ctx.cfg.HooksDir),
		"ui": map[string]interface{}{
			"accent":     strings.TrimSpace(ctx.cfg.UI.Accent),
			"code_theme": strings.TrimSpace(ctx.cfg.UI.CodeTheme),
		},
		"resolved": map[string]interface{}{
			"categories": src,
			"hooks_dir":  ctx.cfg.HooksPath(""),
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isJSONOutput() {
		outputSuccess(configData(ctx), nil)
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'tourtag config init' to create it.")
	} else {
		fmt.Printf("config: %s\n", ctx.configPath)
	}

	if v := strings.TrimSpace(ctx.cfg.CategoriesFile); v != "" {
		fmt.Printf("categories_file: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.HooksDir); v != "" {
		fmt.Printf("hooks_dir: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.Accent); v != "" {
		fmt.Printf("ui.accent: %s\n", v)
	}
	if v := strings.TrimSpace(ctx.cfg.UI.CodeTheme); v != "" {
		fmt.Printf("ui.code_theme: %s\n", v)
	}

	_, src := categories.Load(ctx.cfg.CategoriesPath(categoriesFlag, ""))
	fmt.Println()
	fmt.Printf("categories in use: %s\n", describeSource(src))
	fmt.Printf("hooks directory:   %s\n", ctx.cfg.HooksPath(""))
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global tourtag config.toml settings",
	Long: `Manage global tourtag config.toml settings.

Use this to initialize, inspect, and edit machine-level configuration.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current config and what it resolves to",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default global config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		created, err := config.CreateDefault(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"created":     created,
			}, nil)
			return nil
		}

		if created {
			fmt.Printf("Created config: %s\n", targetPath)
		} else {
			fmt.Printf("Config already exists: %s\n", targetPath)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a global config.toml field",
	Long: `Set a global config.toml field. An empty value clears it.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Examples:
  tourtag config set categories_file ~/.task/tour-categories.yaml
  tourtag config set ui.accent 39
  tourtag config set hooks_dir ""`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadGlobalConfigContextAllowMissing()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		key := strings.TrimSpace(args[0])
		value := strings.TrimSpace(args[1])
		if err := ctx.cfg.Set(key, value); err != nil {
			return handleError(ErrInvalidInput, err, "Valid keys: "+strings.Join(config.Keys(), ", "))
		}

		if err := config.SaveTo(ctx.configPath, ctx.cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		ctx.configExists = true
		if isJSONOutput() {
			data := configData(ctx)
			data["changed"] = []string{key}
			outputSuccess(data, nil)
			return nil
		}

		fmt.Printf("Updated config: %s\n", ctx.configPath)
		if value == "" {
			fmt.Printf("cleared: %s\n", key)
		} else {
			fmt.Printf("%s = %s\n", key, value)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
