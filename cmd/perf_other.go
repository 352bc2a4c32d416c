//go:build !linux

package cmd

import (
	"fmt"
)

// cpuCycles still runs f so the solve itself is never skipped.
func cpuCycles(f func()) (cycles uint64, err error) {
	f()
	err = fmt.Errorf("hardware counters require linux")
	return
}
