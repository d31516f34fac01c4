// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build amd64 || 386

package cpuid

// cpuid executes the CPUID instruction with the given EAX and ECX input
// values. Implemented in assembly. This is the only unchecked machine
// level operation in the module.
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
