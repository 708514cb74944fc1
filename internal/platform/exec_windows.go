//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps console tools from flashing a window over the GUI.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
