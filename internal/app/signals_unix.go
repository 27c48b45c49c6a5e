//go:build !windows

package app

import (
	"os"
	"syscall"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// stopProcess stops only this process, not the process group, so the
// shell that launched it keeps job control.
var stopProcess = func() error {
	return syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
