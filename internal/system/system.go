package system

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Usage is a snapshot of the resources used by the current process.
type Usage struct {
	RSS        uint64  // resident set size, bytes
	CPUPercent float64 // since process start
	HeapAlloc  uint64  // Go heap in use, bytes
	TotalRAM   uint64  // physical memory of the host, bytes
}

// CurrentUsage samples the current process. Host memory is best effort and
// left at zero when it cannot be read.
func CurrentUsage() (Usage, error) {
	var u Usage

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return u, err
	}

	mi, err := p.MemoryInfo()
	if err != nil {
		return u, err
	}
	u.RSS = mi.RSS

	if cpu, err := p.CPUPercent(); err == nil {
		u.CPUPercent = cpu
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		u.TotalRAM = vm.Total
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	u.HeapAlloc = ms.HeapAlloc

	return u, nil
}

// MiB converts a byte count for display.
func MiB(b uint64) float64 {
	return float64(b) / (1 << 20)
}
