package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/aidanlsb/tourtag/internal/ui"
)

// Swapped out in tests.
var (
	stdinIsTerminal  = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	stdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }

	confirmIn  io.Reader = os.Stdin
	confirmOut io.Writer = os.Stderr
)

// canPrompt reports whether a person is at the terminal to answer. JSON
// mode never prompts.
func canPrompt() bool {
	return !isJSONOutput() && stdoutIsTerminal() && stdinIsTerminal()
}

// promptForConfirm asks a yes/no question and defaults to no. It returns
// false without asking when nobody can answer.
func promptForConfirm(question string) bool {
	if !canPrompt() {
		return false
	}
	fmt.Fprintf(confirmOut, "%s %s ", question, ui.Hint("[y/N]"))
	answer, _ := bufio.NewReader(confirmIn).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
