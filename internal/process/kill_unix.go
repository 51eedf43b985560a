//go:build !windows

// Package process stops a launched browser together with the renderer and
// GPU helpers it spawned.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the group led by pid. Errors are
// ignored; the launcher's own Kill runs afterwards.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
