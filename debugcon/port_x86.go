// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build amd64 || 386

package debugcon

// outb writes the low byte of value to the I/O port in the low word of
// port. Implemented in assembly.
func outb(port, value uint32)
