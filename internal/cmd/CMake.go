package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/poppolopoppo/llvm-prebuilt/compile"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * cmake-toolchain command
 ***************************************/

// The descriptor references binaries inside the package folder, so the
// package is installed first when missing.
var CommandCMakeToolchain = utils.NewCommand(
	CATEGORY_CONSUMER, "cmake-toolchain",
	"generate a cmake toolchain file for the selected toolchain and print its path",
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		toolchainFlags := compile.GetToolchainFlags()
		tc, err := compile.NewToolchain(toolchainFlags)
		if err != nil {
			return err
		}

		if err = InstallToolchain(context.Background(), tc, false); err != nil {
			return err
		}

		facet, err := tc.Facet(toolchainFlags)
		if err != nil {
			return err
		}

		dst := tc.CMakeToolchainFile()
		err = utils.UFS.Create(dst, func(wr io.Writer) error {
			return tc.WriteCMakeToolchain(wr, &facet)
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, dst)
		return nil
	}))
