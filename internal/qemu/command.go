// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aibor/qemudetect"
)

// Command is a single QEMU command that can be run.
type Command struct {
	// Path to the qemu-system binary.
	Binary string
	// Path to the kernel to boot. It must be able to drive a q35
	// machine with ISA serial and debugcon devices.
	Kernel string
	// Path to the initramfs to boot with. The detector must be present
	// as /init.
	Initramfs string
	// QEMU machine type to use.
	Machine string
	// CPU model to use. The default "qemu64" carries the brand string
	// the detector looks for, "host" does not.
	CPU string
	// Number of CPUs for the guest.
	SMP uint
	// Memory for the machine in MB.
	Memory uint
	// Disable KVM support.
	NoKVM bool
	// Print the full QEMU command line and the complete guest output.
	Verbose bool
	// Serial console output. If not set, os.Stdout will be used.
	OutWriter io.Writer
	// Receives the bytes the guest writes to the debugcon port.
	// Discarded if not set.
	DebugconWriter io.Writer
	// Stderr of the QEMU command. If not set, os.Stderr will be used.
	ErrWriter io.Writer
}

// NewCommand creates a new [Command] with defaults for booting the given
// kernel and initramfs on an x86_64 guest. KVM is used if available.
func NewCommand(kernel, initramfs string) *Command {
	return &Command{
		Binary:    "qemu-system-x86_64",
		Kernel:    kernel,
		Initramfs: initramfs,
		Machine:   "q35",
		CPU:       "qemu64",
		SMP:       1,
		Memory:    128,
		NoKVM:     !KVMAvailable(),
	}
}

// Output returns [Command.OutWriter] if set or [os.Stdout] otherwise.
func (c *Command) Output() io.Writer {
	if c.OutWriter == nil {
		return os.Stdout
	}

	return c.OutWriter
}

// ErrOutput returns [Command.ErrWriter] if set or [os.Stderr] otherwise.
func (c *Command) ErrOutput() io.Writer {
	if c.ErrWriter == nil {
		return os.Stderr
	}

	return c.ErrWriter
}

// Args compiles the arguments for the QEMU command.
func (c *Command) Args() []Argument {
	args := []Argument{
		UniqueArg("kernel", c.Kernel),
		UniqueArg("initrd", c.Initramfs),
		UniqueArg("machine", c.Machine),
		UniqueArg("cpu", c.CPU),
		UniqueArg("smp", strconv.Itoa(int(c.SMP))),
		UniqueArg("m", strconv.Itoa(int(c.Memory))),
		UniqueArg("serial", "stdio"),
		UniqueArg("display", "none"),
		UniqueArg("monitor", "none"),
		UniqueArg("no-reboot"),
		UniqueArg("nodefaults"),
		UniqueArg("no-user-config"),
	}

	if !c.NoKVM {
		args = append(args, UniqueArg("enable-kvm"))
	}

	if c.DebugconWriter != nil {
		// The debugcon pipe is attached as the first extra file, fd 3.
		args = append(args, UniqueArg("debugcon", "file:/dev/fd/3"))
	}

	kernelCmdline := strings.Join(c.KernelCmdlineArgs(), " ")
	args = append(args, RepeatableArg("append", kernelCmdline))

	return args
}

// KernelCmdlineArgs returns the kernel cmdline arguments.
func (c *Command) KernelCmdlineArgs() []string {
	cmdline := []string{
		"console=ttyS0",
		"panic=-1",
	}
	if !c.Verbose {
		cmdline = append(cmdline, "loglevel=0")
	}

	return cmdline
}

// Run boots the guest and returns the certainty it reported.
func (c *Command) Run(ctx context.Context) (qemudetect.Certainty, error) {
	argStrings, err := BuildArgumentStrings(c.Args())
	if err != nil {
		return 0, err
	}

	cmd := exec.CommandContext(ctx, c.Binary, argStrings...)
	cmd.Stderr = c.ErrOutput()

	if c.Verbose {
		fmt.Fprintln(c.Output(), cmd.String())
	}

	debugconGroup := errgroup.Group{}

	if c.DebugconWriter != nil {
		readPipe, writePipe, err := os.Pipe()
		if err != nil {
			return 0, fmt.Errorf("create debugcon pipe: %w", err)
		}
		defer readPipe.Close()

		// The write end is inherited by QEMU as fd 3 and closed in this
		// process once QEMU started, so the copier terminates when the
		// guest is gone.
		cmd.ExtraFiles = append(cmd.ExtraFiles, writePipe)
		defer writePipe.Close()

		debugconGroup.Go(func() error {
			_, err := io.Copy(c.DebugconWriter, readPipe)
			return err
		})
	}

	out, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start: %w", err)
	}

	for _, extraFile := range cmd.ExtraFiles {
		_ = extraFile.Close()
	}

	result, parseErr := ParseOutput(out, c.Output(), c.Verbose)

	if err := cmd.Wait(); err != nil {
		return result, fmt.Errorf("wait: %w", err)
	}

	return result, errors.Join(parseErr, debugconGroup.Wait())
}
