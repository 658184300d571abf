package arcprogress

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// StrokeCap specifies the shape of the arc's endpoints.
type StrokeCap int

const (
	// CapButt ends the arc flush with its mathematical boundary.
	CapButt StrokeCap = iota
	// CapRound extends each end by a half disc of stroke width.
	CapRound
	// CapSquare extends each end by half the stroke width.
	CapSquare
)

// String returns the lowercase cap name.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// Valid reports whether c is one of the defined caps.
func (c StrokeCap) Valid() bool {
	return c >= CapButt && c <= CapSquare
}

// LineCap returns the equivalent gg line cap.
func (c StrokeCap) LineCap() gg.LineCap {
	switch c {
	case CapRound:
		return gg.LineCapRound
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// ParseStrokeCap parses "butt", "round" or "square" (case-insensitive).
func ParseStrokeCap(s string) (StrokeCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt":
		return CapButt, nil
	case "round":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	}
	return CapButt, invalid("stroke cap", s, "want butt, round or square")
}

// Stroke is the styling of one of the two circles drawn: width, cap and
// colour. It is a value type; the WithX helpers return modified copies.
type Stroke struct {
	// Width is the line width in pixels. Must be >= 0.
	Width float64

	// Cap is the endpoint shape. Only the foreground arc uses it; the
	// background is always a closed circle.
	Cap StrokeCap

	// Color is the stroke colour.
	Color gg.RGBA
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given cap.
func (s Stroke) WithCap(c StrokeCap) Stroke {
	s.Cap = c
	return s
}

// WithColor returns a copy of the Stroke with the given colour.
func (s Stroke) WithColor(c gg.RGBA) Stroke {
	s.Color = c
	return s
}
