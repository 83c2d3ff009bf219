// Package spawn launches detached child processes for keybindings.
package spawn

import (
	"log/slog"
	"os/exec"
	"syscall"
)

// Exec implements wm.Spawner with os/exec. Children get their own
// session so they outlive the manager, and a goroutine reaps each one;
// the X connection is not inherited because Go opens sockets
// close-on-exec.
type Exec struct{}

func (Exec) Spawn(argv []string) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		slog.Error("Failed to spawn", "argv", argv, "error", err)
		return
	}
	slog.Debug("Spawned", "argv", argv, "pid", cmd.Process.Pid)
	go func() {
		_ = cmd.Wait()
	}()
}
