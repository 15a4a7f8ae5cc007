//go:build darwin

package main

import "golang.org/x/sys/unix"

// peakRSS returns the process's maximum resident set size in bytes.
func peakRSS() (uint64, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	return uint64(ru.Maxrss), true
}
