// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package guest implements the guest side of the QEMU boot harness:
// communicating the detection result over the console and shutting the
// machine down once done.
package guest
