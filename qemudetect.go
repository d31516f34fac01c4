// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemudetect detects whether the running process executes inside
// a QEMU virtual machine.
//
// Detection is based on the CPUID hypervisor leaf and the processor
// brand string. It works on x86 and x86_64 only; building for any other
// architecture fails. The detection path performs no system calls and
// uses fixed size buffers only, so it is usable in early boot and PID 1
// contexts.
//
// A guest started with CPU host passthrough ("-cpu host") carries the
// host CPU's brand string instead of QEMU's. Such a guest is reported as
// [Maybe], never as [VeryLikely]. This is a documented limitation, not a
// bug.
package qemudetect

import (
	"log/slog"
	"strings"

	"github.com/aibor/qemudetect/internal/cpuid"
)

// brandSignature is the stable prefix of the brand string QEMU's own CPU
// models carry, e.g. "QEMU Virtual CPU version 2.5+". The version suffix
// changes between QEMU releases, so matching must be containment, not
// equality.
const brandSignature = "QEMU Virtual CPU"

// CPUID backed queries. Swapped in tests.
var (
	hypervisorVendor = cpuid.HypervisorVendor
	brandString      = cpuid.BrandString
)

// Detect examines the CPUID hypervisor and processor information and
// grades how certain it is that the process runs inside QEMU.
//
// It is safe for concurrent use and returns the same result for the
// lifetime of the process. Diagnostics are emitted on [slog] debug
// level.
func Detect() Certainty {
	vendor, ok := hypervisorVendor()
	if !ok {
		slog.Debug("No hypervisor advertises itself, definitely not QEMU.")

		return DefinitelyNot
	}

	hypervisor := cpuid.IdentifyHypervisor(vendor)
	if hypervisor == cpuid.HypervisorQEMU {
		slog.Debug("QEMU is the direct hypervisor.",
			"vendor", vendor)

		return VeryLikely
	}

	brand, ok := brandString()
	if !ok {
		slog.Debug("CPU brand string not available, cannot verify QEMU.",
			"hypervisor", hypervisor)

		return Maybe
	}

	if strings.Contains(brand, brandSignature) {
		slog.Debug("CPU model is QEMU's.",
			"hypervisor", hypervisor, "brand", brand)

		return VeryLikely
	}

	slog.Debug("Hypervisor present but CPU model is not QEMU's.",
		"hypervisor", hypervisor, "brand", brand)

	return Maybe
}

// RunsInsideQEMU reports whether the process runs inside a QEMU virtual
// machine.
//
// It returns true only for [VeryLikely]. Bare hardware, other
// hypervisors and QEMU guests with CPU host passthrough all report
// false. Use [Detect] for the graded result.
func RunsInsideQEMU() bool {
	return Detect().IsVeryLikely()
}
