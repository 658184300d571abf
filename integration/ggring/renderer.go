// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggring

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/arcprogress"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Common errors returned by Renderer operations.
var (
	// ErrNilContext is returned when Draw receives a nil gg.Context.
	ErrNilContext = errors.New("ggring: nil context")

	// ErrNilBar is returned when Draw receives a nil Bar.
	ErrNilBar = errors.New("ggring: nil bar")
)

// Renderer draws Bars onto gg contexts. It holds no per-frame state, so a
// single Renderer can draw any number of Bars.
type Renderer struct {
	face    text.Face
	printer *message.Printer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLabel draws the determinate percentage at the centre with face.
// A nil face disables the label.
func WithLabel(face text.Face) Option {
	return func(r *Renderer) {
		r.face = face
	}
}

// WithLanguage formats the label for tag. Default: English.
func WithLanguage(tag language.Tag) Option {
	return func(r *Renderer) {
		r.printer = message.NewPrinter(tag)
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Draw paints the background circle (when enabled), the foreground arc of
// the current frame and the optional label. It does not clear dc.
// Nothing is drawn while the Bar's draw rect is empty.
func (r *Renderer) Draw(dc *gg.Context, b *arcprogress.Bar) error {
	if dc == nil {
		return ErrNilContext
	}
	if b == nil {
		return ErrNilBar
	}

	rect := b.DrawRect()
	if rect.Empty() {
		return nil
	}
	cx, cy := rect.Center()
	radius := rect.Radius()

	if bg := b.Background(); b.DrawBackground() && bg.Width > 0 {
		dc.ClearPath()
		setStroke(dc, bg.Color, bg.Width, gg.LineCapButt)
		dc.DrawCircle(cx, cy, radius)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("ggring: stroke background: %w", err)
		}
	}

	fg := b.Foreground()
	start, sweep := b.Angles()
	if fg.Width > 0 && sweep != 0 {
		dc.ClearPath()
		setStroke(dc, fg.Color, fg.Width, fg.Cap.LineCap())
		appendArc(dc, cx, cy, radius, start, sweep)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("ggring: stroke arc: %w", err)
		}
	}

	if r.face != nil {
		if label := Label(r.printer, b); label != "" {
			dc.SetFont(r.face)
			dc.SetRGBA(fg.Color.R, fg.Color.G, fg.Color.B, fg.Color.A)
			dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
		}
	}
	return nil
}

func setStroke(dc *gg.Context, c gg.RGBA, width float64, lineCap gg.LineCap) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(width)
	dc.SetLineCap(lineCap)
}

// appendArc adds the arc to the current path.
func appendArc(dc *gg.Context, cx, cy, radius, start, sweep float64) {
	if math.Abs(sweep) >= arcprogress.FullCircle {
		dc.DrawCircle(cx, cy, radius)
		return
	}
	from, to := start, start+sweep
	if sweep < 0 {
		from, to = to, from
	}
	dc.DrawArc(cx, cy, radius, radians(from), radians(to))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
