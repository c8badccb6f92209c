//go:build linux

package base

import (
	"os"

	"golang.org/x/sys/unix"
)

func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}

func setupAnsiConsole() bool {
	return true // every terminal we care about on linux groks vt100 sequences
}
