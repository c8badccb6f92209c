package main

import (
	prebuilt "github.com/poppolopoppo/llvm-prebuilt"
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

/***************************************
 * Launch Command (program entry point)
 ***************************************/

func main() {
	err := prebuilt.LaunchCommand("llvm-prebuilt")
	base.LogPanicIfFailed(prebuilt.LogPrebuilt, err)
}
