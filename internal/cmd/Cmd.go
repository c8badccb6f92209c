package cmd

import (
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogCmd = base.NewLogCategory("Cmd")

// InitCmd anchors this package so importing it registers every command.
func InitCmd() {
}

const (
	CATEGORY_TOOLCHAIN = "Toolchain"
	CATEGORY_CONSUMER  = "Consumer"
	CATEGORY_CACHE     = "Cache"
)
