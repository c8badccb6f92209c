package hal

import (
	"os"
	"sync"

	fqdn "github.com/Showmax/go-fqdn"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/poppolopoppo/llvm-prebuilt/internal/base"
)

var LogHAL = base.NewLogCategory("HAL")

func InitHAL() {
	host := CurrentHostInfo()
	base.LogDebug(LogHAL, "running on %q with %d cores and %v of memory",
		host.Fqdn, host.NumCores, host.TotalMemory)
}

/***************************************
 * Host information
 ***************************************/

// HostInfo snapshots the machine for install provenance records.
type HostInfo struct {
	Fqdn        string
	NumCores    int
	TotalMemory base.SizeInBytes
}

var CurrentHostInfo = sync.OnceValue(func() (host HostInfo) {
	var err error
	if host.Fqdn, err = fqdn.FqdnHostname(); err != nil {
		base.LogWarningOnce(LogHAL, "could not resolve fqdn: %v", err)
		host.Fqdn, _ = os.Hostname()
	}

	if host.NumCores, err = cpu.Counts(true); err != nil {
		base.LogWarningOnce(LogHAL, "could not query cpu count: %v", err)
	}

	if vmem, err := mem.VirtualMemory(); err == nil {
		host.TotalMemory = base.SizeInBytes(vmem.Total)
	} else {
		base.LogWarningOnce(LogHAL, "could not query physical memory: %v", err)
	}
	return
})
