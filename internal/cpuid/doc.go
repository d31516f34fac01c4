// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cpuid provides raw access to the x86 CPUID instruction and
// assembles the hypervisor and processor identification strings from its
// register output.
//
// The package builds for amd64 and 386 only. Any other target fails to
// compile, so a successful build guarantees the instruction exists.
package cpuid
