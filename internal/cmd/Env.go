package cmd

import (
	"fmt"
	"os"

	"github.com/poppolopoppo/llvm-prebuilt/compile"
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * env command
 ***************************************/

// Default output is eval-able from a posix shell, which is how build
// scripts are expected to consume it.
var CommandEnvVars = utils.NewCommand(
	CATEGORY_CONSUMER, "env",
	"print the environment variables published by the selected toolchain",
	utils.OptionCommandParsableFlags("Output", "output options", gFlagsOutput),
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		toolchainFlags := compile.GetToolchainFlags()
		tc, err := compile.NewToolchain(toolchainFlags)
		if err != nil {
			return err
		}

		compilers := tc.CompilerExecutables()

		if gFlagsOutput.Json.Get() {
			document := map[string]string{
				"CC":  compilers["c"].String(),
				"CXX": compilers["cpp"].String(),
				"AS":  compilers["asm"].String(),
			}
			for _, it := range tc.Environment() {
				document[it.Name] = it.Value
			}
			fmt.Fprintln(os.Stdout, base.PrettyPrint(document))
			return nil
		}

		for _, it := range tc.Environment() {
			fmt.Fprintf(os.Stdout, "%s=%q\n", it.Name, it.Value)
		}
		fmt.Fprintf(os.Stdout, "CC=%q\n", compilers["c"])
		fmt.Fprintf(os.Stdout, "CXX=%q\n", compilers["cpp"])
		fmt.Fprintf(os.Stdout, "AS=%q\n", compilers["asm"])
		return nil
	}))
