package cmd

import (
	"fmt"
	"os"

	"github.com/poppolopoppo/llvm-prebuilt/compile"
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * flags command
 ***************************************/

type FlagsOutput struct {
	Json utils.BoolVar
}

var gFlagsOutput = &FlagsOutput{
	Json: base.INHERITABLE_FALSE,
}

func (flags *FlagsOutput) Flags(cfv utils.CommandFlagsVisitor) {
	cfv.Variable("Json", "print flags as a json document", &flags.Json)
}

var CommandFlags = utils.NewCommand(
	CATEGORY_CONSUMER, "flags",
	"print the compiler and linker flags published by the selected toolchain",
	utils.OptionCommandParsableFlags("Output", "output options", gFlagsOutput),
	utils.OptionCommandRun(func(cc utils.CommandContext) error {
		toolchainFlags := compile.GetToolchainFlags()
		tc, err := compile.NewToolchain(toolchainFlags)
		if err != nil {
			return err
		}

		facet, err := tc.Facet(toolchainFlags)
		if err != nil {
			return err
		}

		if gFlagsOutput.Json.Get() {
			fmt.Fprintln(os.Stdout, facet.String())
			return nil
		}

		fmt.Fprintf(os.Stdout, "defines:         %v\n", &facet.Defines)
		fmt.Fprintf(os.Stdout, "cflags:          %v\n", &facet.CFlags)
		fmt.Fprintf(os.Stdout, "cxxflags:        %v\n", &facet.CxxFlags)
		fmt.Fprintf(os.Stdout, "exelinkflags:    %v\n", &facet.ExeLinkerOptions)
		fmt.Fprintf(os.Stdout, "sharedlinkflags: %v\n", &facet.SharedLinkerOptions)
		for _, it := range facet.Exports {
			fmt.Fprintf(os.Stdout, "export:          %s=%s\n", it.Name, it.Value)
		}
		return nil
	}))
