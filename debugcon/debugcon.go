// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package debugcon

// Port is the I/O port QEMU's debugcon device listens on by default.
const Port uint16 = 0xe9

// portWrite is the port output primitive. Swapped in tests.
var portWrite = outb

// Writer emits every byte written to it on the debugcon port. The zero
// value is ready for use.
//
// Writing requires I/O port access. Freestanding and PID 1 contexts
// have it already; regular Linux processes must call
// [AcquirePortAccess] first.
type Writer struct{}

// Write implements [io.Writer]. It never fails.
func (Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		portWrite(uint32(Port), uint32(b))
	}

	return len(p), nil
}
