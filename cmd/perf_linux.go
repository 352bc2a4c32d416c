//go:build linux

package cmd

import (
	perf "github.com/hodgesds/perf-utils"
)

// cpuCycles runs f under a hardware cycle counter.
func cpuCycles(f func()) (cycles uint64, err error) {
	var pv *perf.ProfileValue
	if pv, err = perf.CPUCycles(func() error {
		f()
		return nil
	}); err != nil {
		return
	}
	cycles = pv.Value
	return
}
