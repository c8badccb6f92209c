package compile

import (
	"strings"
	"testing"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
	"github.com/poppolopoppo/llvm-prebuilt/utils"
)

func testToolchainFlags() *ToolchainFlags {
	return &ToolchainFlags{
		Version:          utils.StringVar(DEFAULT_TOOLCHAIN_VERSION),
		DefaultArch:      base.INHERITABLE_TRUE,
		Lto:              base.INHERITABLE_TRUE,
		FunctionSections: base.INHERITABLE_TRUE,
		DataSections:     base.INHERITABLE_TRUE,
		GcSections:       base.INHERITABLE_TRUE,
		Semihosting:      base.INHERITABLE_FALSE,
		Compression:      base.COMPRESSION_LZ4,
	}
}

func linuxToolchain() Toolchain {
	return Toolchain{
		Version:      "18.1.8",
		Distribution: DIST_CLANG,
		HostOs:       OS_LINUX,
		HostArch:     ARCH_X86_64,
	}
}

func embeddedToolchain(targetCpu string) Toolchain {
	return Toolchain{
		Version:      "19.1.5",
		Distribution: DIST_ARM_EMBEDDED,
		HostOs:       OS_LINUX,
		HostArch:     ARCH_X86_64,
		TargetCpu:    targetCpu,
	}
}

func TestNewToolchain_VariantSelection(t *testing.T) {
	hostOs, hostArch, err := CurrentHost()
	if err != nil {
		t.Skipf("unsupported build host: %v", err)
	}
	if !HasToolchainSource(DEFAULT_TOOLCHAIN_VERSION, DIST_CLANG, hostOs, hostArch) {
		t.Skipf("no mainline toolchain published for %v/%v", hostOs, hostArch)
	}

	flags := testToolchainFlags()
	tc, err := NewToolchain(flags)
	if err != nil {
		t.Fatalf("NewToolchain: %v", err)
	}
	if tc.Distribution == DIST_ARM_EMBEDDED {
		t.Errorf("NewToolchain: native build must not select the embedded fork")
	}
	if tc.IsCross() {
		t.Errorf("NewToolchain: no target cpu was requested")
	}

	if !HasToolchainSource("19.1.5", DIST_ARM_EMBEDDED, hostOs, hostArch) {
		t.Skipf("no embedded toolchain published for %v/%v", hostOs, hostArch)
	}

	flags = testToolchainFlags()
	flags.Version = "19.1.5"
	flags.TargetCpu = "cortex-m4f"
	tc, err = NewToolchain(flags)
	if err != nil {
		t.Fatalf("NewToolchain: %v", err)
	}
	if tc.Distribution != DIST_ARM_EMBEDDED || !tc.IsCross() {
		t.Errorf("NewToolchain: cortex-m target must select the embedded fork, got %v", tc.Distribution)
	}
	if tc.TargetCpu != "cortex-m4f" {
		t.Errorf("NewToolchain: target cpu not recorded, got %q", tc.TargetCpu)
	}
}

func TestNewToolchain_UnknownTargetCpu(t *testing.T) {
	if _, _, err := CurrentHost(); err != nil {
		t.Skipf("unsupported build host: %v", err)
	}

	flags := testToolchainFlags()
	flags.TargetCpu = "cortex-a72"
	if _, err := NewToolchain(flags); err == nil {
		t.Errorf("NewToolchain: an explicitly requested unknown cpu must fail")
	}
}

func TestToolchain_Decorate_Options(t *testing.T) {
	tc := linuxToolchain()

	facet, err := tc.Facet(testToolchainFlags())
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if !facet.ExeLinkerOptions.Contains("-fuse-ld=lld") {
		t.Errorf("Decorate: exe links must use the bundled linker")
	}
	if !facet.CFlags.Contains("-flto", "-ffunction-sections", "-fdata-sections") {
		t.Errorf("Decorate: missing compile flags: %v", facet.CFlags)
	}
	if !facet.CxxFlags.Contains("-flto") {
		t.Errorf("Decorate: cxxflags missing -flto: %v", facet.CxxFlags)
	}

	// disabling every option removes the corresponding flags
	flags := testToolchainFlags()
	flags.Lto.Disable()
	flags.FunctionSections.Disable()
	flags.DataSections.Disable()
	flags.GcSections.Disable()
	facet, err = tc.Facet(flags)
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if facet.CFlags.Any("-flto", "-ffunction-sections", "-fdata-sections") {
		t.Errorf("Decorate: disabled options leaked into cflags: %v", facet.CFlags)
	}
	if facet.ExeLinkerOptions.Contains("-Wl,--gc-sections") {
		t.Errorf("Decorate: disabled gc-sections leaked into link flags")
	}
}

func TestToolchain_Decorate_GcSectionsPerOs(t *testing.T) {
	tests := []struct {
		os       HostOs
		expected string
	}{
		{OS_LINUX, "-Wl,--gc-sections"},
		{OS_MACOS, "-Wl,-dead_strip"},
		{OS_WINDOWS, ""},
	}
	for _, it := range tests {
		tc := linuxToolchain()
		tc.HostOs = it.os

		facet, err := tc.Facet(testToolchainFlags())
		if err != nil {
			t.Fatalf("%v: Facet: %v", it.os, err)
		}

		gcFlags := base.StringSet{}
		for _, flag := range facet.ExeLinkerOptions {
			if strings.HasPrefix(flag, "-Wl,-dead_strip") || strings.HasPrefix(flag, "-Wl,--gc-sections") {
				gcFlags.Append(flag)
			}
		}
		if it.expected == "" {
			if gcFlags.Len() != 0 {
				t.Errorf("%v: expected no section gc flag, got %v", it.os, gcFlags)
			}
		} else if !gcFlags.Equals(base.StringSet{it.expected}) {
			t.Errorf("%v: expected %q, got %v", it.os, it.expected, gcFlags)
		}
	}
}

func TestToolchain_Decorate_LinuxRuntime(t *testing.T) {
	tc := linuxToolchain()
	facet, err := tc.Facet(testToolchainFlags())
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}

	if !facet.ExeLinkerOptions.Contains("-lc++", "-lc++abi") {
		t.Errorf("Decorate: linux native must link the bundled c++ runtime: %v", facet.ExeLinkerOptions)
	}
	foundRpath := false
	for _, it := range facet.ExeLinkerOptions {
		if strings.HasPrefix(it, "-Wl,-rpath,") && strings.Contains(it, "x86_64-unknown-linux-gnu") {
			foundRpath = true
		}
	}
	if !foundRpath {
		t.Errorf("Decorate: missing rpath into the per-triple lib folder: %v", facet.ExeLinkerOptions)
	}

	tc.HostArch = ARCH_ARM64
	facet, err = tc.Facet(testToolchainFlags())
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if !strings.Contains(facet.ExeLinkerOptions.Join(" "), "aarch64-unknown-linux-gnu") {
		t.Errorf("Decorate: arm64 host must use the aarch64 triple: %v", facet.ExeLinkerOptions)
	}
}

func TestToolchain_Decorate_WindowsExportsHint(t *testing.T) {
	tc := linuxToolchain()
	tc.HostOs = OS_WINDOWS

	facet, err := tc.Facet(testToolchainFlags())
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if value, ok := facet.Exports.Get("gnu.disable_flags"); !ok || value != "libcxx" {
		t.Errorf("Decorate: windows native must publish the libcxx hint, got %v", facet.Exports)
	}
	if facet.ExeLinkerOptions.Contains("-lc++") {
		t.Errorf("Decorate: windows must not link the unix c++ runtime")
	}
}

func TestToolchain_Decorate_CrossTarget(t *testing.T) {
	tc := embeddedToolchain("cortex-m33f")

	facet, err := tc.Facet(testToolchainFlags())
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if !facet.CFlags.Contains("-mcpu=cortex-m33", "-mfloat-abi=hard", "-mfpu=fpv5-sp-d16") {
		t.Errorf("Decorate: missing cortex-m selection: %v", facet.CFlags)
	}
	if facet.ExeLinkerOptions.Contains("-lc++") {
		t.Errorf("Decorate: cross builds must not inject host runtime flags")
	}

	// DefaultArch=false suppresses the injection entirely
	flags := testToolchainFlags()
	flags.DefaultArch.Disable()
	facet, err = tc.Facet(flags)
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if facet.CFlags.Contains("-mcpu=cortex-m33") {
		t.Errorf("Decorate: -DefaultArch=false must not inject -mcpu: %v", facet.CFlags)
	}
}

func TestToolchain_Decorate_Semihosting(t *testing.T) {
	tc := embeddedToolchain("cortex-m55")

	flags := testToolchainFlags()
	flags.Semihosting.Enable()
	facet, err := tc.Facet(flags)
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if !facet.ExeLinkerOptions.Contains("-lcrt0-semihost", "-lsemihost") {
		t.Errorf("Decorate: semihosting runtime not linked: %v", facet.ExeLinkerOptions)
	}

	// the option is ignored outside of the embedded fork
	native := linuxToolchain()
	facet, err = native.Facet(flags)
	if err != nil {
		t.Fatalf("Facet: %v", err)
	}
	if facet.ExeLinkerOptions.Contains("-lsemihost") {
		t.Errorf("Decorate: semihosting must only apply to the embedded fork")
	}
}

func TestToolchain_Environment(t *testing.T) {
	restore := utils.UFS.Packages
	utils.UFS.Packages = utils.MakeDirectory(t.TempDir())
	defer func() { utils.UFS.Packages = restore }()

	tc := linuxToolchain()
	env := tc.Environment()

	byName := map[string]string{}
	for _, it := range env {
		byName[it.Name] = it.Value
	}
	if byName["LLVM_INSTALL_DIR"] != tc.PackageDir().String() {
		t.Errorf("Environment: LLVM_INSTALL_DIR should point at the package folder, got %q", byName["LLVM_INSTALL_DIR"])
	}
	if !strings.Contains(byName["LD_LIBRARY_PATH"], "x86_64-unknown-linux-gnu") {
		t.Errorf("Environment: linux loader path should use the per-triple folder, got %q", byName["LD_LIBRARY_PATH"])
	}

	tc.HostOs = OS_MACOS
	byName = map[string]string{}
	for _, it := range tc.Environment() {
		byName[it.Name] = it.Value
	}
	if _, ok := byName["DYLD_FALLBACK_LIBRARY_PATH"]; !ok {
		t.Errorf("Environment: macos should publish the dyld fallback path")
	}
	if _, ok := byName["LD_LIBRARY_PATH"]; ok {
		t.Errorf("Environment: macos should not publish LD_LIBRARY_PATH")
	}
}

func TestToolchain_CompilerExecutables(t *testing.T) {
	tc := linuxToolchain()
	compilers := tc.CompilerExecutables()
	if compilers["c"].Basename != "clang" || compilers["cpp"].Basename != "clang++" || compilers["asm"].Basename != "clang" {
		t.Errorf("CompilerExecutables: unexpected names %v", compilers)
	}

	tc.HostOs = OS_WINDOWS
	compilers = tc.CompilerExecutables()
	if compilers["c"].Basename != "clang.exe" || compilers["cpp"].Basename != "clang++.exe" {
		t.Errorf("CompilerExecutables: windows executables need the .exe suffix, got %v", compilers)
	}
}

/***************************************
 * Package identity
 ***************************************/

func TestPackageId_ExcludesOptions(t *testing.T) {
	// identity depends only on version/distribution/host, never on options,
	// so the same binaries are reused across flag combinations
	tc := linuxToolchain()
	if tc.PackageId() != linuxToolchain().PackageId() {
		t.Fatalf("PackageId: not deterministic")
	}

	other := linuxToolchain()
	other.Version = "19.1.7"
	if tc.PackageId() == other.PackageId() {
		t.Errorf("PackageId: version must contribute to the identity")
	}

	other = linuxToolchain()
	other.HostArch = ARCH_ARM64
	if tc.PackageId() == other.PackageId() {
		t.Errorf("PackageId: host arch must contribute to the identity")
	}
}

func TestPackageId_CoarseCpuFamily(t *testing.T) {
	m4 := embeddedToolchain("cortex-m4f")
	m55 := embeddedToolchain("cortex-m55")
	if m4.PackageId() != m55.PackageId() {
		t.Errorf("PackageId: every cortex-m core shares the multilib package")
	}

	native := linuxToolchain()
	native.Version = m4.Version
	if native.PackageId() == m4.PackageId() {
		t.Errorf("PackageId: the embedded fork is a distinct package")
	}
}
