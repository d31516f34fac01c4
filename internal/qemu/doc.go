// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu boots the detector under qemu-system-x86_64 and reads
// back the certainty the guest prints on its serial console. It expects
// the QEMU binary to be present on the system.
//
// The guest communicates its result via a magic line on the default
// console. Bytes the guest writes to the debugcon port are captured
// through an extra file descriptor.
package qemu
