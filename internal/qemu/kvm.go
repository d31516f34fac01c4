// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"os"
	"runtime"
)

// KVMAvailable checks if KVM support is available for x86_64 guests.
func KVMAvailable() bool {
	if runtime.GOARCH != "amd64" {
		return false
	}

	f, err := os.OpenFile("/dev/kvm", os.O_WRONLY, 0)
	_ = f.Close()

	return err == nil
}
