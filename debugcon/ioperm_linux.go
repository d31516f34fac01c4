// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package debugcon

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// AcquirePortAccess grants the calling process access to the debugcon
// I/O port. It requires CAP_SYS_RAWIO, which PID 1 in an initramfs has.
// Regular processes usually need to run as root.
func AcquirePortAccess() error {
	if err := unix.Ioperm(int(Port), 1, 1); err != nil {
		return fmt.Errorf("ioperm port %#x: %w", Port, err)
	}

	return nil
}
