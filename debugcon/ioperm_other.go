// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package debugcon

// AcquirePortAccess is a no-op. Either port access is unrestricted for
// the current context or there is no interface to request it.
func AcquirePortAccess() error {
	return nil
}
