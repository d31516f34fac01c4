// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemudetect

import "errors"

// ErrCertaintyInvalid is returned when parsing an unknown certainty
// name.
var ErrCertaintyInvalid = errors.New("unknown certainty")

// Certainty grades how sure [Detect] is about running inside QEMU.
type Certainty int

const (
	// DefinitelyNot means no hypervisor advertises itself. QEMU always
	// does, so the process cannot run inside QEMU.
	DefinitelyNot Certainty = iota

	// Maybe means a hypervisor is present, but neither its vendor
	// signature nor the CPU brand string identifies QEMU. This is what a
	// QEMU guest with CPU host passthrough looks like. If QEMU/KVM is
	// the only hypervisor in use on a machine, Maybe is as good as
	// [VeryLikely].
	Maybe

	// VeryLikely means the hypervisor vendor signature or the CPU brand
	// string is the one QEMU uses. Another hypervisor could mimic them,
	// hence no absolute certainty.
	VeryLikely
)

// String implements [fmt.Stringer].
func (c Certainty) String() string {
	switch c {
	case DefinitelyNot:
		return "definitely-not"
	case Maybe:
		return "maybe"
	case VeryLikely:
		return "very-likely"
	default:
		return "invalid"
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (c Certainty) MarshalText() ([]byte, error) {
	switch c {
	case DefinitelyNot, Maybe, VeryLikely:
		return []byte(c.String()), nil
	default:
		return nil, ErrCertaintyInvalid
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Certainty) UnmarshalText(text []byte) error {
	switch string(text) {
	case "definitely-not":
		*c = DefinitelyNot
	case "maybe":
		*c = Maybe
	case "very-likely":
		*c = VeryLikely
	default:
		return ErrCertaintyInvalid
	}

	return nil
}

// IsDefinitelyNot reports whether the certainty is [DefinitelyNot].
func (c Certainty) IsDefinitelyNot() bool {
	return c == DefinitelyNot
}

// IsVeryLikely reports whether the certainty is [VeryLikely].
func (c Certainty) IsVeryLikely() bool {
	return c == VeryLikely
}

// IsMaybeOrVeryLikely reports whether the certainty is [Maybe] or
// [VeryLikely].
func (c Certainty) IsMaybeOrVeryLikely() bool {
	return c == Maybe || c == VeryLikely
}
