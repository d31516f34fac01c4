// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemudetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCPUID replaces the CPUID backed queries for the duration of the
// test.
func fakeCPUID(t *testing.T, vendor string, vendorOK bool, brand string, brandOK bool) {
	t.Helper()

	origVendor := hypervisorVendor
	origBrand := brandString

	hypervisorVendor = func() (string, bool) { return vendor, vendorOK }
	brandString = func() (string, bool) { return brand, brandOK }

	t.Cleanup(func() {
		hypervisorVendor = origVendor
		brandString = origBrand
	})
}

func TestDetectCertaintyMapping(t *testing.T) {
	tests := []struct {
		name     string
		vendor   string
		vendorOK bool
		brand    string
		brandOK  bool
		expected Certainty
	}{
		{
			name:     "bare hardware",
			expected: DefinitelyNot,
		},
		{
			name:     "qemu tcg",
			vendor:   "TCGTCGTCGTCG",
			vendorOK: true,
			brand:    "QEMU Virtual CPU version 2.5+",
			brandOK:  true,
			expected: VeryLikely,
		},
		{
			name:     "kvm without brand string",
			vendor:   "KVMKVMKVM\x00\x00\x00",
			vendorOK: true,
			expected: Maybe,
		},
		{
			name:     "kvm with qemu cpu model",
			vendor:   "KVMKVMKVM\x00\x00\x00",
			vendorOK: true,
			brand:    "QEMU Virtual CPU version 2.5+",
			brandOK:  true,
			expected: VeryLikely,
		},
		{
			name:     "kvm with host cpu passthrough",
			vendor:   "KVMKVMKVM\x00\x00\x00",
			vendorOK: true,
			brand:    "AMD EPYC 7543 32-Core Processor",
			brandOK:  true,
			expected: Maybe,
		},
		{
			name:     "other hypervisor",
			vendor:   "VMwareVMware",
			vendorOK: true,
			brand:    "Intel(R) Xeon(R) Gold 6354 CPU @ 3.00GHz",
			brandOK:  true,
			expected: Maybe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakeCPUID(t, tt.vendor, tt.vendorOK, tt.brand, tt.brandOK)

			actual := Detect()

			assert.Equal(t, tt.expected, actual)
			assert.Equal(t, tt.expected.IsVeryLikely(), RunsInsideQEMU())
		})
	}
}
