// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package guest

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// SilenceKernel stops the kernel from printing to the console, so the
// shutdown messages do not garble the result output. Best effort, fails
// silently if /proc is not mounted.
func SilenceKernel() {
	_ = os.WriteFile("/proc/sys/kernel/printk", []byte("0"), 0o644)
}

// Poweroff shuts the machine down immediately. Only call as PID 1 of a
// guest. On a regular system this powers off the actual machine.
func Poweroff() error {
	if err := unix.Reboot(unix.LINUX_REBOOT_CMD_POWER_OFF); err != nil {
		return fmt.Errorf("reboot: %w", err)
	}

	return nil
}
