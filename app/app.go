package app

import (
	"os"
	"time"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/internal/hal"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

func WithCommandEnv(prefix string, scope func(*utils.CommandEnvT) error) error {
	startedAt := time.Now()

	env := utils.InitCommandEnv(prefix, os.Args[1:], startedAt)

	defer utils.StartProfiling()()

	hal.InitHAL()

	err := scope(env)

	if err != nil {
		base.LogForwardln("")
		base.LogError(utils.LogCommand, "%v", err)
	}
	return err
}
