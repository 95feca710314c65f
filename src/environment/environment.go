package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetInteractive overrides terminal detection, typically from a CLI
// flag. Pass true to always prompt and false to never prompt.
func ForceSetInteractive(value bool) {
	interactiveOverride = &value
}

// ClearInteractiveOverride restores normal terminal detection. Mostly useful
// in tests.
func ClearInteractiveOverride() {
	interactiveOverride = nil
}

// IsInteractive returns true if a user is there to answer questions, i.e.
// both stdin and stdout are attached to a terminal.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
