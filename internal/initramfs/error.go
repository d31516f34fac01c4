// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package initramfs

import "errors"

// ErrNotRegularFile is returned if the init file is not a regular file.
var ErrNotRegularFile = errors.New("not a regular file")
