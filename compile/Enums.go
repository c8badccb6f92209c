package compile

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

/***************************************
 * Host operating system
 ***************************************/

// String() values double as keys inside the embedded source table, which
// keeps the data file aligned with upstream release naming.

type HostOs byte

const (
	OS_LINUX HostOs = iota
	OS_MACOS
	OS_WINDOWS
)

func GetHostOses() []HostOs {
	return []HostOs{
		OS_LINUX,
		OS_MACOS,
		OS_WINDOWS,
	}
}
func (x HostOs) Description() string {
	switch x {
	case OS_LINUX:
		return "Linux distributions with glibc"
	case OS_MACOS:
		return "Apple macOS"
	case OS_WINDOWS:
		return "Microsoft Windows"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x HostOs) String() string {
	switch x {
	case OS_LINUX:
		return "Linux"
	case OS_MACOS:
		return "Macos"
	case OS_WINDOWS:
		return "Windows"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x *HostOs) Set(in string) (err error) {
	switch strings.ToUpper(in) {
	case "LINUX":
		*x = OS_LINUX
	case "MACOS", "DARWIN", "OSX":
		*x = OS_MACOS
	case "WINDOWS":
		*x = OS_WINDOWS
	default:
		err = base.MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x HostOs) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *HostOs) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

/***************************************
 * Host architecture
 ***************************************/

type HostArch byte

const (
	ARCH_X86_64 HostArch = iota
	ARCH_ARM64
)

func GetHostArchs() []HostArch {
	return []HostArch{
		ARCH_X86_64,
		ARCH_ARM64,
	}
}
func (x HostArch) Description() string {
	switch x {
	case ARCH_X86_64:
		return "AMD64/Intel 64-bit"
	case ARCH_ARM64:
		return "ARMv8 AArch64"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x HostArch) String() string {
	switch x {
	case ARCH_X86_64:
		return "x86_64"
	case ARCH_ARM64:
		return "armv8"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x *HostArch) Set(in string) (err error) {
	switch strings.ToLower(in) {
	case "x86_64", "amd64", "x64":
		*x = ARCH_X86_64
	case "armv8", "arm64", "aarch64":
		*x = ARCH_ARM64
	default:
		err = base.MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x HostArch) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *HostArch) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

/***************************************
 * Distribution variant
 ***************************************/

type DistributionType byte

const (
	DIST_CLANG DistributionType = iota
	DIST_ARM_EMBEDDED
	DIST_APPLE_DMG
)

func GetDistributionTypes() []DistributionType {
	return []DistributionType{
		DIST_CLANG,
		DIST_ARM_EMBEDDED,
		DIST_APPLE_DMG,
	}
}
func (x DistributionType) Description() string {
	switch x {
	case DIST_CLANG:
		return "mainline LLVM release archive"
	case DIST_ARM_EMBEDDED:
		return "LLVM Embedded Toolchain for Arm"
	case DIST_APPLE_DMG:
		return "Apple disk-image bundle"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x DistributionType) String() string {
	switch x {
	case DIST_CLANG:
		return "clang"
	case DIST_ARM_EMBEDDED:
		return "arm-embedded"
	case DIST_APPLE_DMG:
		return "apple-dmg"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x *DistributionType) Set(in string) (err error) {
	switch strings.ToLower(in) {
	case DIST_CLANG.String():
		*x = DIST_CLANG
	case DIST_ARM_EMBEDDED.String():
		*x = DIST_ARM_EMBEDDED
	case DIST_APPLE_DMG.String():
		*x = DIST_APPLE_DMG
	default:
		err = base.MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x DistributionType) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *DistributionType) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

/***************************************
 * Host detection
 ***************************************/

// CurrentHost fails closed: pre-compiled binaries only exist for the
// allow-listed pairs, anything else must not fall through to a guess.
func CurrentHost() (os HostOs, arch HostArch, err error) {
	switch runtime.GOOS {
	case "linux":
		os = OS_LINUX
	case "darwin":
		os = OS_MACOS
	case "windows":
		os = OS_WINDOWS
	default:
		return os, arch, fmt.Errorf(
			"the build os %q is not supported, pre-compiled binaries are only available for %v",
			runtime.GOOS, base.Map(HostOs.String, GetHostOses()...))
	}

	switch runtime.GOARCH {
	case "amd64":
		arch = ARCH_X86_64
	case "arm64":
		arch = ARCH_ARM64
	default:
		return os, arch, fmt.Errorf(
			"the build architecture %q is not supported for %v, pre-compiled binaries are only available for %v",
			runtime.GOARCH, os, base.Map(HostArch.String, GetHostArchs()...))
	}

	return os, arch, nil
}
