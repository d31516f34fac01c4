// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build integration

//go:generate env CGO_ENABLED=0 go build -v -trimpath -buildvcs=false -o testdata/bin/ ../../cmd/...

package qemu_test

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/aibor/qemudetect"
	"github.com/aibor/qemudetect/internal/initramfs"
	"github.com/aibor/qemudetect/internal/qemu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	KernelPath = "/kernels/vmlinuz"
	Verbose    bool
)

func init() {
	flag.StringVar(
		&KernelPath,
		"qemudetect.kernel",
		KernelPath,
		"path of the test kernel",
	)
	flag.BoolVar(
		&Verbose,
		"qemudetect.verbose",
		Verbose,
		"show complete guest output",
	)
}

func TestRunIntegration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cpu      string
		noKVM    bool
		expected qemudetect.Certainty
	}{
		{
			name:     "qemu64 cpu model",
			cpu:      "qemu64",
			expected: qemudetect.VeryLikely,
		},
		{
			// TCG always reports QEMU's own hypervisor signature.
			name:     "tcg",
			cpu:      "qemu64",
			noKVM:    true,
			expected: qemudetect.VeryLikely,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			archivePath, err := initramfs.WriteFile("testdata/bin/qemudetect")
			require.NoError(t, err)

			t.Cleanup(func() { _ = os.Remove(archivePath) })

			var console, debugcon bytes.Buffer

			cmd := qemu.NewCommand(KernelPath, archivePath)
			cmd.CPU = tt.cpu
			cmd.NoKVM = cmd.NoKVM || tt.noKVM
			cmd.Verbose = Verbose
			cmd.OutWriter = &console
			cmd.DebugconWriter = &debugcon

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			actual, err := cmd.Run(ctx)
			require.NoError(t, err, "console output:\n%s", console.String())

			assert.Equal(t, tt.expected, actual)
			assert.Contains(t, debugcon.String(), "Hello from the QEMU guest!")
		})
	}
}

// CPU host passthrough hides QEMU's brand string. The detector reports
// Maybe then, which is the documented limitation, so the harness must
// see exactly that.
func TestRunIntegrationHostCPU(t *testing.T) {
	t.Parallel()

	if !qemu.KVMAvailable() {
		t.Skip("cpu host requires KVM")
	}

	archivePath, err := initramfs.WriteFile("testdata/bin/qemudetect")
	require.NoError(t, err)

	t.Cleanup(func() { _ = os.Remove(archivePath) })

	var console bytes.Buffer

	cmd := qemu.NewCommand(KernelPath, archivePath)
	cmd.CPU = "host"
	cmd.Verbose = Verbose
	cmd.OutWriter = &console

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	actual, err := cmd.Run(ctx)
	require.NoError(t, err, "console output:\n%s", console.String())

	assert.Equal(t, qemudetect.Maybe, actual)
}
