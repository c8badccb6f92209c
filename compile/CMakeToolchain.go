package compile

import (
	"io"
	"strings"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * CMake toolchain descriptor
 ***************************************/

const CMAKE_TOOLCHAIN_BASENAME = "llvm-prebuilt-toolchain.cmake"

func (tc Toolchain) CMakeToolchainFile() utils.Filename {
	return tc.PackageDir().File(CMAKE_TOOLCHAIN_BASENAME)
}

// cmakePath forces forward slashes, backslashes in set() are escapes.
func cmakePath(f utils.Filename) string {
	return utils.SanitizePath(f.String(), '/')
}

// WriteCMakeToolchain renders a self-contained toolchain descriptor. The
// flag lists go into the *_INIT variables so project and user flags still
// compose on top of them.
func (tc Toolchain) WriteCMakeToolchain(dst io.Writer, facet *Facet) error {
	sf := utils.NewStructuredFile(dst, utils.STRUCTUREDFILE_DEFAULT_TAB)

	sf.Println("# generated by llvm-prebuilt, do not edit")
	sf.Println("# %v", tc)
	sf.LineBreak()

	if tc.IsCross() {
		sf.Println("set(CMAKE_SYSTEM_NAME Generic)")
		sf.Println("set(CMAKE_SYSTEM_PROCESSOR ARM)")
		sf.LineBreak()
	}

	compilers := tc.CompilerExecutables()
	sf.Println("set(CMAKE_C_COMPILER %q)", cmakePath(compilers["c"]))
	sf.Println("set(CMAKE_CXX_COMPILER %q)", cmakePath(compilers["cpp"]))
	sf.Println("set(CMAKE_ASM_COMPILER %q)", cmakePath(compilers["asm"]))
	sf.LineBreak()

	cflags := base.CopySlice(facet.CFlags...)
	cxxflags := base.CopySlice(facet.CxxFlags...)
	for _, def := range facet.Defines {
		cflags = append(cflags, "-D"+def)
		cxxflags = append(cxxflags, "-D"+def)
	}

	sf.Println("set(CMAKE_C_FLAGS_INIT %q)", strings.Join(cflags, " "))
	sf.Println("set(CMAKE_CXX_FLAGS_INIT %q)", strings.Join(cxxflags, " "))
	sf.Println("set(CMAKE_ASM_FLAGS_INIT %q)", strings.Join(cflags, " "))
	sf.Println("set(CMAKE_EXE_LINKER_FLAGS_INIT %q)", facet.ExeLinkerOptions.Join(" "))
	sf.Println("set(CMAKE_SHARED_LINKER_FLAGS_INIT %q)", facet.SharedLinkerOptions.Join(" "))

	if tc.IsCross() {
		sf.LineBreak()
		// bare-metal test binaries cannot link against a hosted runtime
		sf.Println("set(CMAKE_TRY_COMPILE_TARGET_TYPE STATIC_LIBRARY)")
	}

	return nil
}
