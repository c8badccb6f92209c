//go:build prebuilt_profiling

package utils

import (
	"strings"

	"github.com/pkg/profile"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

const PROFILING_ENABLED = true

var LogProfiling = base.NewLogCategory("Profiling")

/***************************************
 * Profiling Mode
 ***************************************/

type ProfilingMode byte

const (
	PROFILING_NONE ProfilingMode = iota
	PROFILING_CPU
	PROFILING_MEMORY
	PROFILING_TRACE
)

func GetProfilingModes() []ProfilingMode {
	return []ProfilingMode{
		PROFILING_NONE,
		PROFILING_CPU,
		PROFILING_MEMORY,
		PROFILING_TRACE,
	}
}
func (x ProfilingMode) Mode() func(*profile.Profile) {
	switch x {
	case PROFILING_CPU:
		return profile.CPUProfile
	case PROFILING_MEMORY:
		return profile.MemProfile
	case PROFILING_TRACE:
		return profile.TraceProfile
	default:
		base.UnexpectedValue(x)
		return nil
	}
}
func (x ProfilingMode) String() string {
	switch x {
	case PROFILING_NONE:
		return "NONE"
	case PROFILING_CPU:
		return "CPU"
	case PROFILING_MEMORY:
		return "MEM"
	case PROFILING_TRACE:
		return "TRACE"
	default:
		base.UnexpectedValue(x)
		return ""
	}
}
func (x *ProfilingMode) Set(in string) (err error) {
	switch strings.ToUpper(in) {
	case PROFILING_NONE.String():
		*x = PROFILING_NONE
	case PROFILING_CPU.String():
		*x = PROFILING_CPU
	case PROFILING_MEMORY.String():
		*x = PROFILING_MEMORY
	case PROFILING_TRACE.String():
		*x = PROFILING_TRACE
	default:
		err = base.MakeUnexpectedValueError(x, in)
	}
	return err
}

/***************************************
 * Profiling Flags
 ***************************************/

type ProfilingFlags struct {
	Profiling ProfilingMode
}

var GetProfilingFlags = NewGlobalCommandParsableFlags("Profiling", "optional runtime profiling", &ProfilingFlags{
	Profiling: PROFILING_NONE,
})

func (flags *ProfilingFlags) Flags(cfv CommandFlagsVisitor) {
	cfv.Variable("Profiling", "record a pprof profile while the command runs", &flags.Profiling)
}

func StartProfiling() func() {
	flags := GetProfilingFlags()
	if flags.Profiling == PROFILING_NONE {
		return func() {}
	}

	base.LogClaim(LogProfiling, "profiling enabled: %v", flags.Profiling)
	session := profile.Start(flags.Profiling.Mode(), profile.ProfilePath(UFS.Cache.Folder("profiling").String()), profile.NoShutdownHook)
	return session.Stop
}
