package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/tourtag/internal/categories"
	"github.com/aidanlsb/tourtag/internal/config"
	"github.com/aidanlsb/tourtag/internal/hook"
)

const (
	hookNoHooksEnv = "TOURTAG_NO_HOOKS"
	hookDebugEnv   = "TOURTAG_DEBUG"
)

// errHookRejected makes the process exit non-zero after the hook has
// already written its own feedback.
var errHookRejected = errors.New("task rejected")

var hookCmd = &cobra.Command{
	Use:   "hook [taskwarrior-args...]",
	Short: "Run as a Taskwarrior on-add / on-modify hook",
	Long: `Run as a Taskwarrior hook.

Reads one task (on-add) or the original and modified task (on-modify) as
JSON lines on stdin. Writes the re-tagged task to stdout and feedback to
stderr. A task whose project is exactly "tour" is rejected with exit
status 1 and nothing on stdout.

Taskwarrior passes key:value arguments such as data:/home/me/.task; the
data directory is used to locate tour-categories.txt. --config and
--categories may precede them.

Environment:
  TOURTAG_NO_HOOKS=1   pass tasks through unchanged
  TOURTAG_DEBUG=1      print a one-line trace to stderr`,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	RunE:               runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	flags, twArgs := splitHookFlags(args)
	if flags.help {
		return cmd.Help()
	}

	taskArgs := hook.ParseArgs(twArgs)
	hookCfg := loadHookConfig(flags.config)
	cats, src := categories.Load(hookCfg.CategoriesPath(flags.categories, taskArgs.DataDir()))

	opts := hook.Options{
		Categories:     cats,
		PassThrough:    envBoolTrue(hookNoHooksEnv),
		CategorySource: string(src.Origin),
		Command:        taskArgs.Command(),
	}
	if envBoolTrue(hookDebugEnv) {
		opts.Trace = cmd.ErrOrStderr()
	}

	if code := hook.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts); code != hook.ExitOK {
		return errHookRejected
	}
	return nil
}

type hookFlags struct {
	config     string
	categories string
	help       bool
}

// splitHookFlags pulls tourtag's own flags out of a hook command line.
// Everything else is handed to hook.ParseArgs untouched.
func splitHookFlags(args []string) (hookFlags, []string) {
	var flags hookFlags
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		var target *string
		switch name {
		case "--config":
			target = &flags.config
		case "--categories":
			target = &flags.categories
		case "-h", "--help":
			flags.help = true
			continue
		default:
			rest = append(rest, arg)
			continue
		}
		if !hasValue && i+1 < len(args) {
			i++
			value = args[i]
		}
		*target = value
	}
	return flags, rest
}

// loadHookConfig never fails: Taskwarrior must keep working with a broken
// or missing config file.
func loadHookConfig(explicitPath string) *config.Config {
	path := config.ResolveConfigPath(explicitPath)
	if _, err := os.Stat(path); err != nil {
		return &config.Config{}
	}
	loaded, err := config.LoadFrom(path)
	if err != nil || loaded == nil {
		return &config.Config{}
	}
	return loaded
}

func envBoolTrue(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
