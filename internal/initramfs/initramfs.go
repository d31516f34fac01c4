// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package initramfs builds minimal initramfs archives containing a
// single statically linked binary as "/init".
package initramfs

import (
	"fmt"
	"io"
	"os"

	"github.com/cavaliergopher/cpio"
)

// Write writes an initramfs archive to w with the file at initPath as
// "/init".
func Write(w io.Writer, initPath string) error {
	source, err := os.Open(initPath)
	if err != nil {
		return fmt.Errorf("open init file: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegularFile, initPath)
	}

	writer := cpio.NewWriter(w)

	header, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}

	header.Name = "init"
	header.Mode = cpio.TypeReg | 0o755

	if err := writer.WriteHeader(header); err != nil {
		return fmt.Errorf("write header for %s: %w", header.Name, err)
	}

	if _, err := io.Copy(writer, source); err != nil {
		return fmt.Errorf("write body for %s: %w", header.Name, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

// WriteFile writes an initramfs archive with the file at initPath as
// "/init" into a new temporary file and returns its path. It is the
// caller's responsibility to remove the file when it is no longer
// needed.
func WriteFile(initPath string) (string, error) {
	archiveFile, err := os.CreateTemp("", "qemudetect-initramfs")
	if err != nil {
		return "", fmt.Errorf("create archive file: %w", err)
	}
	defer archiveFile.Close()

	if err := Write(archiveFile, initPath); err != nil {
		_ = os.Remove(archiveFile.Name())

		return "", err
	}

	return archiveFile.Name(), nil
}
