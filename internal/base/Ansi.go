package base

import (
	"os"
	"sync/atomic"
)

/***************************************
 * Ansi Colors
 ***************************************/

const (
	ANSI_RESET       = "\033[0m"
	ANSI_FG_RED      = "\033[31m"
	ANSI_FG_GREEN    = "\033[32m"
	ANSI_FG_YELLOW   = "\033[33m"
	ANSI_FG_BLUE     = "\033[34m"
	ANSI_FG_MAGENTA  = "\033[35m"
	ANSI_FG_CYAN     = "\033[36m"
	ANSI_FG_WHITE    = "\033[37m"
	ANSI_FG_DARKGRAY = "\033[90m"
)

var gEnableAnsiColor atomic.Bool
var gEnableInteractiveShell atomic.Bool

func EnableAnsiColor() bool {
	return gEnableAnsiColor.Load()
}
func SetEnableAnsiColor(enabled bool) {
	gEnableAnsiColor.Store(enabled)
}

// EnableInteractiveShell reports whether stdout is an actual terminal,
// which gates download progress output.
func EnableInteractiveShell() bool {
	return gEnableInteractiveShell.Load()
}
func SetEnableInteractiveShell(enabled bool) {
	gEnableInteractiveShell.Store(enabled)
}

func InitBase() {
	interactive := isTerminal(os.Stdout)
	SetEnableInteractiveShell(interactive)
	SetEnableAnsiColor(interactive && setupAnsiConsole())
}
