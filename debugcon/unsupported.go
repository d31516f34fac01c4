// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !(amd64 || 386)

package debugcon

// I/O ports only exist on x86. The undefined identifier below makes the
// build fail with a readable diagnostic instead of producing a writer
// that silently drops everything.
var _ = ErrorPortIORequiresX86OrX86_64
