// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "errors"

var (
	// ErrGuestPanic is returned if a kernel panic occurred in the guest
	// system.
	ErrGuestPanic = errors.New("guest system panicked")

	// ErrGuestNoResult is returned if the guest terminated without
	// printing a detection result line.
	ErrGuestNoResult = errors.New("guest did not print a detection result")

	// ErrArgumentCollision is returned if an [Argument] collides with an
	// earlier one in the same list.
	ErrArgumentCollision = errors.New("colliding args")
)
