// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpuid

import (
	"bytes"
	"encoding/binary"
)

// CPUID leaves used by this package.
const (
	// leafFeatures is the standard feature information leaf.
	leafFeatures uint32 = 0x1
	// leafHypervisor is the reserved hypervisor information leaf. Only
	// valid if the hypervisor flag in [leafFeatures] is set.
	leafHypervisor uint32 = 0x4000_0000
	// leafExtended is the extended function leaf. Its EAX output is the
	// highest implemented extended leaf.
	leafExtended uint32 = 0x8000_0000
	// leafBrandString is the first of three consecutive leaves carrying
	// the processor brand string.
	leafBrandString uint32 = 0x8000_0002
)

// hypervisorFlag is bit 31 of ECX in the features leaf. The bit is
// reserved as always zero on physical CPUs and set by hypervisors that
// expose themselves to the guest.
const hypervisorFlag uint32 = 1 << 31

// Registers holds the output of a single CPUID query.
type Registers struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Query executes the CPUID instruction for the given leaf.
func Query(leaf uint32) Registers {
	eax, ebx, ecx, edx := cpuid(leaf, 0)

	return Registers{EAX: eax, EBX: ebx, ECX: ecx, EDX: edx}
}

// HypervisorPresent reports whether a hypervisor advertises itself via
// the hypervisor flag in the features leaf.
func HypervisorPresent() bool {
	return Query(leafFeatures).ECX&hypervisorFlag != 0
}

// HypervisorVendor returns the 12 byte vendor signature from the
// hypervisor leaf, e.g. "TCGTCGTCGTCG". It returns false if no
// hypervisor advertises itself.
func HypervisorVendor() (string, bool) {
	if !HypervisorPresent() {
		return "", false
	}

	return vendorSignature(Query(leafHypervisor)), true
}

// vendorSignature assembles the vendor signature carried in EBX, ECX and
// EDX in that order, each register contributing four bytes in little
// endian order.
func vendorSignature(r Registers) string {
	var buf [12]byte

	binary.LittleEndian.PutUint32(buf[0:4], r.EBX)
	binary.LittleEndian.PutUint32(buf[4:8], r.ECX)
	binary.LittleEndian.PutUint32(buf[8:12], r.EDX)

	return string(buf[:])
}

// BrandString returns the processor brand string from the extended
// leaves, e.g. "QEMU Virtual CPU version 2.5+". It returns false if the
// CPU does not implement the brand string leaves.
func BrandString() (string, bool) {
	if Query(leafExtended).EAX < leafBrandString+2 {
		return "", false
	}

	var regs [3]Registers
	for i := range regs {
		regs[i] = Query(leafBrandString + uint32(i))
	}

	return brandString(regs), true
}

// brandString assembles the 48 byte brand string. Each leaf contributes
// 16 bytes in register order EAX, EBX, ECX, EDX, four little endian
// bytes each. Unused trailing bytes are NUL and get trimmed.
func brandString(regs [3]Registers) string {
	var buf [48]byte

	for i, r := range regs {
		offset := i * 16
		binary.LittleEndian.PutUint32(buf[offset:], r.EAX)
		binary.LittleEndian.PutUint32(buf[offset+4:], r.EBX)
		binary.LittleEndian.PutUint32(buf[offset+8:], r.ECX)
		binary.LittleEndian.PutUint32(buf[offset+12:], r.EDX)
	}

	return string(bytes.TrimRight(buf[:], "\x00"))
}
