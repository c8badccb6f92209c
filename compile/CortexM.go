package compile

import (
	"fmt"
	"strings"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

/***************************************
 * Cortex-M target profiles
 ***************************************/

type FloatAbiType byte

const (
	FLOATABI_SOFT FloatAbiType = iota
	FLOATABI_HARD
)

func (x FloatAbiType) String() string {
	switch x {
	case FLOATABI_SOFT:
		return "soft"
	case FLOATABI_HARD:
		return "hard"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x *FloatAbiType) Set(in string) (err error) {
	switch strings.ToLower(in) {
	case FLOATABI_SOFT.String():
		*x = FLOATABI_SOFT
	case FLOATABI_HARD.String():
		*x = FLOATABI_HARD
	default:
		err = base.MakeUnexpectedValueError(x, in)
	}
	return err
}
func (x FloatAbiType) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}
func (x *FloatAbiType) UnmarshalText(data []byte) error {
	return x.Set(string(data))
}

type CortexMProfile struct {
	Name     string       `json:"name"`
	Target   string       `json:"target"` // clang target triple
	Cpu      string       `json:"cpu"`    // -mcpu identifier
	FloatAbi FloatAbiType `json:"float_abi"`
	Fpu      string       `json:"fpu,omitempty"` // empty means no FPU on this core
}

// Suffix conventions follow upstream naming: plain names are soft-float,
// "f" selects the single-precision FPU, "d" the double-precision one.
var cortexMProfiles = []CortexMProfile{
	{Name: "cortex-m0", Target: "armv6m-none-eabi", Cpu: "cortex-m0", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m0plus", Target: "armv6m-none-eabi", Cpu: "cortex-m0plus", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m1", Target: "armv6m-none-eabi", Cpu: "cortex-m1", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m3", Target: "armv7m-none-eabi", Cpu: "cortex-m3", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m4", Target: "armv7em-none-eabi", Cpu: "cortex-m4", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m4f", Target: "armv7em-none-eabihf", Cpu: "cortex-m4", FloatAbi: FLOATABI_HARD, Fpu: "fpv4-sp-d16"},
	{Name: "cortex-m7", Target: "armv7em-none-eabi", Cpu: "cortex-m7", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m7f", Target: "armv7em-none-eabihf", Cpu: "cortex-m7", FloatAbi: FLOATABI_HARD, Fpu: "fpv5-sp-d16"},
	{Name: "cortex-m7d", Target: "armv7em-none-eabihf", Cpu: "cortex-m7", FloatAbi: FLOATABI_HARD, Fpu: "fpv5-d16"},
	{Name: "cortex-m23", Target: "armv8m.base-none-eabi", Cpu: "cortex-m23", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m33", Target: "armv8m.main-none-eabi", Cpu: "cortex-m33", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m33f", Target: "armv8m.main-none-eabihf", Cpu: "cortex-m33", FloatAbi: FLOATABI_HARD, Fpu: "fpv5-sp-d16"},
	{Name: "cortex-m35pf", Target: "armv8m.main-none-eabihf", Cpu: "cortex-m35p", FloatAbi: FLOATABI_HARD, Fpu: "fpv5-sp-d16"},
	{Name: "cortex-m55", Target: "armv8.1m.main-none-eabi", Cpu: "cortex-m55", FloatAbi: FLOATABI_SOFT},
	{Name: "cortex-m85", Target: "armv8.1m.main-none-eabi", Cpu: "cortex-m85", FloatAbi: FLOATABI_SOFT},
}

func GetCortexMProfiles() []CortexMProfile {
	return cortexMProfiles
}
func GetCortexMNames() []string {
	return base.Map(func(p CortexMProfile) string { return p.Name }, cortexMProfiles...)
}

func FindCortexMProfile(name string) (CortexMProfile, error) {
	for _, it := range cortexMProfiles {
		if strings.EqualFold(it.Name, name) {
			return it, nil
		}
	}
	return CortexMProfile{}, fmt.Errorf(
		"unknown target cpu %q, supported cpus are: %v",
		name, strings.Join(GetCortexMNames(), ", "))
}

// Decorate injects the architecture selection into compilation and
// executable links. Shared links are left alone: embedded images are
// static executables, there is nothing to select the core for there.
func (p CortexMProfile) Decorate(facet *Facet) {
	selection := []string{
		"-target", p.Target,
		"-mcpu=" + p.Cpu,
		"-mfloat-abi=" + p.FloatAbi.String(),
	}
	if p.Fpu != "" {
		selection = append(selection, "-mfpu="+p.Fpu)
	}

	facet.AddCompilationFlag(selection...)
	facet.ExeLinkerOptions.Append(selection...)
}
