// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggring

import (
	"math"

	"github.com/gogpu/arcprogress"
	"golang.org/x/text/message"
)

// Label returns the determinate progress as a whole percentage of the
// maximum, formatted by p, e.g. "42%". Values beyond the maximum are
// clamped to +-100. Indeterminate Bars have no label.
func Label(p *message.Printer, b *arcprogress.Bar) string {
	if b.Indeterminate() {
		return ""
	}
	pct := b.Progress() / b.Maximum() * 100
	pct = math.Max(-100, math.Min(100, pct))
	return p.Sprintf("%d%%", int(math.Round(pct)))
}
