// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !(amd64 || 386)

package cpuid

// The CPUID instruction only exists on x86. Refusing to build keeps
// callers from linking a detector that could never return true. The
// undefined identifier below makes the build fail with a readable
// diagnostic.
var _ = ErrorCPUIDRequiresX86OrX86_64
