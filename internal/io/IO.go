package io

import (
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogIO = base.NewLogCategory("IO")

func InitIO() {
}
