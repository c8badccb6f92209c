package compile

import (
	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

var LogCompile = base.NewLogCategory("Compile")

func InitCompile() {
	base.LogDebug(LogCompile, "compile package initialized, %d toolchain versions embedded", len(GetToolchainVersions()))
}

/***************************************
 * Toolchain flags
 ***************************************/

// ToolchainFlags mirrors the recipe options: every field below tunes the
// published flags, and none of them participates in the package identity.

type ToolchainFlags struct {
	Version   utils.StringVar
	TargetCpu utils.StringVar

	DefaultArch      utils.BoolVar
	Lto              utils.BoolVar
	FunctionSections utils.BoolVar
	DataSections     utils.BoolVar
	GcSections       utils.BoolVar
	Semihosting      utils.BoolVar

	Compression base.CompressionFormat
}

const DEFAULT_TOOLCHAIN_VERSION = "18.1.8"

var GetToolchainFlags = utils.NewGlobalCommandParsableFlags("Toolchain", "llvm toolchain selection and flag options", &ToolchainFlags{
	Version:          utils.StringVar(DEFAULT_TOOLCHAIN_VERSION),
	DefaultArch:      base.INHERITABLE_TRUE,
	Lto:              base.INHERITABLE_TRUE,
	FunctionSections: base.INHERITABLE_TRUE,
	DataSections:     base.INHERITABLE_TRUE,
	GcSections:       base.INHERITABLE_TRUE,
	Semihosting:      base.INHERITABLE_FALSE,
	Compression:      base.COMPRESSION_LZ4,
})

func (flags *ToolchainFlags) Flags(cfv utils.CommandFlagsVisitor) {
	cfv.Persistent("Version", "llvm release to install", &flags.Version)
	cfv.Persistent("TargetCpu", "cross-compile for a cortex-m core instead of the host", &flags.TargetCpu)
	cfv.Persistent("DefaultArch", "inject -target/-mcpu selection when cross-compiling", &flags.DefaultArch)
	cfv.Persistent("Lto", "enable link time optimization", &flags.Lto)
	cfv.Persistent("FunctionSections", "place each function in its own section", &flags.FunctionSections)
	cfv.Persistent("DataSections", "place each data item in its own section", &flags.DataSections)
	cfv.Persistent("GcSections", "let the linker drop unreferenced sections", &flags.GcSections)
	cfv.Persistent("Semihosting", "link the semihosted C runtime (embedded targets only)", &flags.Semihosting)
	cfv.Persistent("Compression", "codec for the installed files list", &flags.Compression)
}
