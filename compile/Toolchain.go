package compile

import (
	"fmt"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

/***************************************
 * Toolchain
 ***************************************/

// Toolchain is the resolved identity of one installable package: a version,
// a distribution variant and the host it was pre-compiled for. Options are
// deliberately not part of it, they only shape the published flags.

type Toolchain struct {
	Version      string           `json:"version"`
	Distribution DistributionType `json:"distribution"`
	HostOs       HostOs           `json:"os"`
	HostArch     HostArch         `json:"arch"`
	TargetCpu    string           `json:"target_cpu,omitempty"` // empty targets the host itself
}

// NewToolchain resolves the distribution variant from the requested version
// and target:
//   - a cortex-m target cpu selects the embedded fork,
//   - on macOS, a version only published as a disk image selects the dmg
//     variant,
//   - everything else uses the mainline release archives.
func NewToolchain(flags *ToolchainFlags) (tc Toolchain, err error) {
	tc.HostOs, tc.HostArch, err = CurrentHost()
	if err != nil {
		return
	}

	tc.Version = flags.Version.Get()
	if tc.Version == "" {
		tc.Version = DEFAULT_TOOLCHAIN_VERSION
	}

	if targetCpu := flags.TargetCpu.Get(); targetCpu != "" {
		var profile CortexMProfile
		if profile, err = FindCortexMProfile(targetCpu); err != nil {
			return
		}
		tc.TargetCpu = profile.Name
		tc.Distribution = DIST_ARM_EMBEDDED
	} else if tc.HostOs == OS_MACOS &&
		!HasToolchainSource(tc.Version, DIST_CLANG, tc.HostOs, tc.HostArch) &&
		HasToolchainSource(tc.Version, DIST_APPLE_DMG, tc.HostOs, tc.HostArch) {
		tc.Distribution = DIST_APPLE_DMG
	} else {
		tc.Distribution = DIST_CLANG
	}

	// resolve eagerly so an unsupported combination fails before any download
	if _, err = tc.Source(); err != nil {
		return
	}

	base.LogVerbose(LogCompile, "resolved llvm %s as %v for %v/%v",
		tc.Version, tc.Distribution, tc.HostOs, tc.HostArch)
	return
}

func (tc Toolchain) Source() (ToolchainSource, error) {
	return GetToolchainSource(tc.Version, tc.Distribution, tc.HostOs, tc.HostArch)
}

func (tc Toolchain) IsCross() bool {
	return tc.TargetCpu != ""
}

func (tc Toolchain) String() string {
	if tc.IsCross() {
		return fmt.Sprintf("llvm-%s-%v-%s", tc.Version, tc.Distribution, tc.TargetCpu)
	}
	return fmt.Sprintf("llvm-%s-%v", tc.Version, tc.Distribution)
}

/***************************************
 * Package layout
 ***************************************/

func (tc Toolchain) PackageDir() utils.Directory {
	return utils.UFS.Packages.Folder(tc.Version, tc.PackageId().ShortString())
}
func (tc Toolchain) BinDir() utils.Directory {
	return tc.PackageDir().Folder("bin")
}
func (tc Toolchain) LibDir() utils.Directory {
	return tc.PackageDir().Folder("lib")
}

// linuxLibTriple names the per-triple lib folder mainline releases ship the
// C++ runtime under.
func (tc Toolchain) linuxLibTriple() string {
	switch tc.HostArch {
	case ARCH_X86_64:
		return "x86_64-unknown-linux-gnu"
	case ARCH_ARM64:
		return "aarch64-unknown-linux-gnu"
	default:
		base.UnexpectedValue(tc.HostArch)
		return ""
	}
}

func (tc Toolchain) executableName(name string) string {
	if tc.HostOs == OS_WINDOWS {
		return name + ".exe"
	}
	return name
}

// CompilerExecutables maps the conventional tool names onto the installed
// binaries. The assembler is the clang driver itself.
func (tc Toolchain) CompilerExecutables() map[string]utils.Filename {
	bin := tc.BinDir()
	return map[string]utils.Filename{
		"c":   bin.File(tc.executableName("clang")),
		"cpp": bin.File(tc.executableName("clang++")),
		"asm": bin.File(tc.executableName("clang")),
	}
}

/***************************************
 * Published environment
 ***************************************/

type EnvVar struct {
	Name, Value string
}

// Environment publishes where the toolchain landed, plus the dynamic loader
// path needed to run the bundled tools on hosts where the package carries
// its own C++ runtime.
func (tc Toolchain) Environment() []EnvVar {
	result := []EnvVar{
		{Name: "LLVM_INSTALL_DIR", Value: tc.PackageDir().String()},
	}
	switch tc.HostOs {
	case OS_LINUX:
		result = append(result, EnvVar{Name: "LD_LIBRARY_PATH", Value: tc.LibDir().Folder(tc.linuxLibTriple()).String()})
	case OS_MACOS:
		result = append(result, EnvVar{Name: "DYLD_FALLBACK_LIBRARY_PATH", Value: tc.LibDir().String()})
	}
	return result
}

/***************************************
 * Published flags
 ***************************************/

// Decorate computes the flag lists published to consumers from the resolved
// toolchain and the user options.
func (tc Toolchain) Decorate(flags *ToolchainFlags, facet *Facet) error {
	// the bundled linker understands every flag below, the host one may not
	facet.ExeLinkerOptions.Append("-fuse-ld=lld")

	if tc.IsCross() && flags.DefaultArch.Get() {
		profile, err := FindCortexMProfile(tc.TargetCpu)
		if err != nil {
			return err
		}
		profile.Decorate(facet)
	}

	if flags.Lto.Get() {
		facet.AddCompilationFlag("-flto")
		facet.AddLinkFlag("-flto")
	}
	if flags.FunctionSections.Get() {
		facet.AddCompilationFlag("-ffunction-sections")
	}
	if flags.DataSections.Get() {
		facet.AddCompilationFlag("-fdata-sections")
	}
	if flags.GcSections.Get() {
		switch tc.HostOs {
		case OS_MACOS:
			facet.AddLinkFlag("-Wl,-dead_strip")
		case OS_LINUX:
			facet.AddLinkFlag("-Wl,--gc-sections")
		case OS_WINDOWS:
			// lld-link discards unreferenced sections on its own
		default:
			base.UnexpectedValue(tc.HostOs)
		}
	}

	if tc.Distribution == DIST_ARM_EMBEDDED && flags.Semihosting.Get() {
		facet.ExeLinkerOptions.Append("-lcrt0-semihost", "-lsemihost")
	}

	if !tc.IsCross() {
		switch tc.HostOs {
		case OS_LINUX:
			// bind against the bundled libc++, not whatever the distro ships
			libdir := tc.LibDir().Folder(tc.linuxLibTriple()).String()
			facet.AddLinkFlag(
				"-L"+libdir,
				"-Wl,-rpath,"+libdir,
				"-lc++", "-lc++abi")
		case OS_WINDOWS:
			// clang on windows drives the MSVC runtime, the host profile
			// must not inject a libcxx of its own
			facet.Exports.Add("gnu.disable_flags", "libcxx")
		}
	}

	return nil
}

// Facet is the one-call helper commands use: a fresh facet decorated from
// the current options.
func (tc Toolchain) Facet(flags *ToolchainFlags) (Facet, error) {
	facet := NewFacet()
	err := tc.Decorate(flags, &facet)
	return facet, err
}
