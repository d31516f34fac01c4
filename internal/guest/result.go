// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package guest

import (
	"bytes"
	"fmt"

	"github.com/aibor/qemudetect"
)

// Identifier prefixes the result line the guest prints on its console
// for consumption by the host.
const Identifier = "QEMUDETECT_RESULT"

const format = Identifier + ": %s"

// Sprint creates the full result line for the given certainty.
func Sprint(c qemudetect.Certainty) string {
	return fmt.Sprintf(format, c)
}

// Parse extracts the certainty from a console line. It reports false if
// the line is not a result line.
func Parse(line []byte) (qemudetect.Certainty, bool) {
	rest, found := bytes.CutPrefix(bytes.TrimSpace(line), []byte(Identifier+": "))
	if !found {
		return 0, false
	}

	var c qemudetect.Certainty
	if err := c.UnmarshalText(rest); err != nil {
		return 0, false
	}

	return c, true
}
