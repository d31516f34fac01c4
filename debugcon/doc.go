// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package debugcon writes to QEMU's debug console I/O port.
//
// The debugcon device ("-debugcon" QEMU flag) forwards every byte a
// guest writes to I/O port 0xE9 to the host, bypassing the guest's own
// I/O stack entirely. Without the device, port writes are simply
// discarded, so writing is always safe.
//
// Like the rest of the module, the package builds for amd64 and 386
// only.
package debugcon
