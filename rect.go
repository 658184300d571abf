package arcprogress

// drawInset is the gap, in pixels, kept between the stroke and the bounds.
const drawInset = 1.0

// Rect is an axis-aligned rectangle in host pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// ComputeDrawRect returns the square the arc is inscribed in: centred in a
// width x height box and inset by thickness/2 + 1 on every side, so a stroke
// of the given thickness stays inside the box.
func ComputeDrawRect(width, height, thickness float64) Rect {
	inset := thickness/2 + drawInset
	var dx, dy float64
	switch {
	case width > height:
		dx = (width - height) / 2
	case width < height:
		dy = (height - width) / 2
	}
	return Rect{
		Left:   dx + inset,
		Top:    dy + inset,
		Right:  width - dx - inset,
		Bottom: height - dy - inset,
	}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Radius returns half the width, the radius of the inscribed circle.
func (r Rect) Radius() float64 { return r.Width() / 2 }

// Center returns the centre point.
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}
