package prebuilt

import (
	"github.com/poppolopoppo/llvm-prebuilt/app"
	"github.com/poppolopoppo/llvm-prebuilt/compile"
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/internal/cmd"
	"github.com/poppolopoppo/llvm-prebuilt/internal/io"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

var LogPrebuilt = base.NewLogCategory("Prebuilt")

/***************************************
 * Launch Command (program entry point)
 ***************************************/

func LaunchCommand(prefix string) error {
	return app.WithCommandEnv(prefix, func(env *utils.CommandEnvT) error {
		io.InitIO()
		compile.InitCompile()
		cmd.InitCmd()

		if err := env.LoadConfig(); err != nil {
			base.LogWarning(LogPrebuilt, "discarding unreadable config: %v", err)
		}

		err := env.Run()

		if er := env.SaveConfig(); er != nil && err == nil {
			err = er
		}
		return err
	})
}
