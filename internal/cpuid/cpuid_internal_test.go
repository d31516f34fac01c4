// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpuid

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVendorSignature(t *testing.T) {
	tests := []struct {
		name     string
		input    Registers
		expected string
	}{
		{
			name: "tcg",
			input: Registers{
				EBX: 0x54474354,
				ECX: 0x43544743,
				EDX: 0x47435447,
			},
			expected: "TCGTCGTCGTCG",
		},
		{
			name: "kvm",
			input: Registers{
				EBX: 0x4b4d564b,
				ECX: 0x564b4d56,
				EDX: 0x0000004d,
			},
			expected: "KVMKVMKVM\x00\x00\x00",
		},
		{
			name:     "zero",
			input:    Registers{},
			expected: "\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vendorSignature(tt.input))
		})
	}
}

// regsForBrand packs a string into the three register tuples the brand
// string leaves would return for it, using the documented byte order.
func regsForBrand(s string) [3]Registers {
	var buf [48]byte

	copy(buf[:], s)

	var regs [3]Registers
	for i := range regs {
		offset := i * 16
		regs[i] = Registers{
			EAX: binary.LittleEndian.Uint32(buf[offset:]),
			EBX: binary.LittleEndian.Uint32(buf[offset+4:]),
			ECX: binary.LittleEndian.Uint32(buf[offset+8:]),
			EDX: binary.LittleEndian.Uint32(buf[offset+12:]),
		}
	}

	return regs
}

func TestBrandStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "qemu",
			input: "QEMU Virtual CPU version 2.5+",
		},
		{
			name:  "full 48 bytes",
			input: "QEMU Virtual CPU version 2.5+ padded to the max!",
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, brandString(regsForBrand(tt.input)))
		})
	}
}
