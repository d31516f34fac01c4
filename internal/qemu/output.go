// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/aibor/qemudetect"
	"github.com/aibor/qemudetect/internal/guest"
)

var panicRE = regexp.MustCompile(`^\[[0-9. ]+\] Kernel panic - not syncing: `)

// ParseOutput scans the guest console output from r for the detection
// result line and kernel panics.
//
// All lines are copied to w until the result line is found. With verbose
// set, copying continues after the match, so the remaining lines enhance
// the context information.
func ParseOutput(r io.Reader, w io.Writer, verbose bool) (qemudetect.Certainty, error) {
	var (
		result      qemudetect.Certainty
		resultFound bool
		guestErr    error
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()

		switch {
		case panicRE.Match(line):
			guestErr = ErrGuestPanic
		case !resultFound:
			result, resultFound = guest.Parse(line)
		}

		if !resultFound || verbose {
			fmt.Fprintf(w, "%s\n", line)
		}
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("scan output: %w", err)
	}

	if guestErr != nil {
		return result, guestErr
	}

	if !resultFound {
		return result, ErrGuestNoResult
	}

	return result, nil
}
