// pkg/utils/rusage.go

package utils

import (
	"os"
	"syscall"
)

type Rusage struct {
	syscall.Rusage
}

func (ru *Rusage) GetUtime() float64 {
	return float64(ru.Utime.Sec) + float64(ru.Utime.Usec)/1e6
}

func (ru *Rusage) GetStime() float64 {
	return float64(ru.Stime.Sec) + float64(ru.Stime.Usec)/1e6
}

// GetRusage returns the resource usage of the current process.
func GetRusage() *Rusage {
	var ru syscall.Rusage
	_ = syscall.Getrusage(syscall.RUSAGE_SELF, &ru)
	return &Rusage{ru}
}

// RusageOf returns the resource usage recorded for an exited child process,
// or nil if none is available.
func RusageOf(state *os.ProcessState) *Rusage {
	if state == nil {
		return nil
	}
	if ru, ok := state.SysUsage().(*syscall.Rusage); ok && ru != nil {
		return &Rusage{*ru}
	}
	return nil
}
