// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggring

import (
	"testing"

	"github.com/gogpu/arcprogress"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		maximum  float64
		want     string
	}{
		{"zero", 0, 100, "0%"},
		{"partial", 42, 100, "42%"},
		{"rounded", 1, 3, "33%"},
		{"full", 100, 100, "100%"},
		{"over maximum", 150, 100, "100%"},
		{"negative", -30, 100, "-30%"},
		{"under negative maximum", -500, 100, "-100%"},
		{"negative maximum", 50, -100, "-50%"},
	}
	p := message.NewPrinter(language.English)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBar(t, func(c *arcprogress.Config) {
				c.Maximum = tt.maximum
				c.Progress = tt.progress
			})
			if got := Label(p, b); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelIndeterminate(t *testing.T) {
	b := newTestBar(t, func(c *arcprogress.Config) {
		c.Progress = 50
		c.Indeterminate = true
	})
	if got := Label(message.NewPrinter(language.English), b); got != "" {
		t.Errorf("Label() = %q, want empty", got)
	}
}
