// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command qemudetect reports whether it runs inside a QEMU virtual
// machine.
//
// Run without flags it prints the detection certainty and exits 0 only
// if running inside QEMU is very likely. With -guest it boots a copy of
// itself as /init under qemu-system-x86_64 and reports the verdict from
// inside the guest. Linux only.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aibor/qemudetect"
	"github.com/aibor/qemudetect/debugcon"
	"github.com/aibor/qemudetect/internal/guest"
	"github.com/aibor/qemudetect/internal/initramfs"
	"github.com/aibor/qemudetect/internal/qemu"
)

const kernelEnvVar = "QEMUDETECT_KERNEL"

type flags struct {
	debug     bool
	guestMode bool
	kernel    string
	cpu       string
	noKVM     bool
	verbose   bool
}

func parseFlags(args []string, output io.Writer) (*flags, error) {
	flags := &flags{}

	fs := flag.NewFlagSet("qemudetect", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&flags.debug, "debug", false,
		"enable debug logging")
	fs.BoolVar(&flags.guestMode, "guest", false,
		"boot this binary under QEMU and report the guest's verdict")
	fs.StringVar(&flags.kernel, "kernel", os.Getenv(kernelEnvVar),
		"kernel to boot in guest mode (default $"+kernelEnvVar+")")
	fs.StringVar(&flags.cpu, "cpu", "qemu64",
		"CPU model to use in guest mode")
	fs.BoolVar(&flags.noKVM, "no-kvm", false,
		"disable KVM acceleration in guest mode")
	fs.BoolVar(&flags.verbose, "verbose", false,
		"print guest kernel output in guest mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	logLevel := slog.LevelWarn
	if flags.debug {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if flags.guestMode {
		return runGuest(flags, stdout, stderr)
	}

	certainty := qemudetect.Detect()
	fmt.Fprintln(stdout, certainty)

	if certainty.IsVeryLikely() {
		return 0
	}

	return 1
}

// runGuest boots a copy of this binary as /init under QEMU and reports
// the certainty detected inside the guest.
func runGuest(flags *flags, stdout, stderr io.Writer) int {
	if flags.kernel == "" {
		fmt.Fprintf(stderr,
			"Error: no kernel given, use -kernel or $%s\n", kernelEnvVar)

		return 2
	}

	self, err := os.Executable()
	if err != nil {
		fmt.Fprintf(stderr, "Error: get own path: %v\n", err)

		return 1
	}

	archivePath, err := initramfs.WriteFile(self)
	if err != nil {
		fmt.Fprintf(stderr, "Error: build initramfs: %v\n", err)

		return 1
	}

	defer func() { _ = os.Remove(archivePath) }()

	cmd := qemu.NewCommand(flags.kernel, archivePath)
	cmd.CPU = flags.cpu
	cmd.NoKVM = cmd.NoKVM || flags.noKVM
	cmd.Verbose = flags.verbose
	cmd.OutWriter = stdout
	cmd.DebugconWriter = stdout
	cmd.ErrWriter = stderr

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	certainty, err := cmd.Run(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: run guest: %v\n", err)

		return 1
	}

	fmt.Fprintln(stdout, certainty)

	if certainty.IsVeryLikely() {
		return 0
	}

	return 1
}

// runInit is the entry point when the binary is booted as /init inside
// a guest. It prints the result line for the host on the console,
// greets the host on the debugcon port and powers the machine off.
func runInit() {
	certainty := qemudetect.Detect()
	fmt.Println(guest.Sprint(certainty))

	if certainty.IsMaybeOrVeryLikely() {
		if err := debugcon.AcquirePortAccess(); err == nil {
			fmt.Fprintln(debugcon.Writer{}, "Hello from the QEMU guest!")
		}
	}

	guest.SilenceKernel()

	if err := guest.Poweroff(); err != nil {
		fmt.Printf("Error: power off: %v\n", err)
	}
}

func main() {
	if os.Getpid() == 1 {
		runInit()

		return
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
