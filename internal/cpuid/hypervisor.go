// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cpuid

// Hypervisor identifies a hypervisor by its vendor signature.
type Hypervisor int

// Known hypervisors.
const (
	HypervisorUnknown Hypervisor = iota
	// HypervisorQEMU is QEMU's own TCG emulation, without a hardware
	// accelerator in between.
	HypervisorQEMU
	HypervisorKVM
	HypervisorVMware
	HypervisorHyperV
	HypervisorXen
	HypervisorBhyve
)

var hypervisorSignatures = map[string]Hypervisor{
	"TCGTCGTCGTCG":          HypervisorQEMU,
	"KVMKVMKVM\x00\x00\x00": HypervisorKVM,
	"VMwareVMware":          HypervisorVMware,
	"Microsoft Hv":          HypervisorHyperV,
	"XenVMMXenVMM":          HypervisorXen,
	"bhyve bhyve ":          HypervisorBhyve,
}

// IdentifyHypervisor maps a vendor signature to a known [Hypervisor].
// Unknown signatures map to [HypervisorUnknown].
func IdentifyHypervisor(signature string) Hypervisor {
	return hypervisorSignatures[signature]
}

// String implements [fmt.Stringer].
func (h Hypervisor) String() string {
	switch h {
	case HypervisorQEMU:
		return "qemu"
	case HypervisorKVM:
		return "kvm"
	case HypervisorVMware:
		return "vmware"
	case HypervisorHyperV:
		return "hyper-v"
	case HypervisorXen:
		return "xen"
	case HypervisorBhyve:
		return "bhyve"
	default:
		return "unknown"
	}
}
