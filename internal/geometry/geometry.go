// Package geometry converts between normalized (percentage-of-surface)
// coordinates and absolute pixel coordinates. The editor positions overlays
// in percentages so the same layout maps onto both the on-screen container
// and the native-resolution export canvas.
package geometry

// Bounds is the width/height rectangle of a surface being addressed.
// It is always passed in explicitly; nothing in this package queries a
// rendered surface.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is an absolute position in pixels on some surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NormPoint is a position expressed as percentages of a surface,
// each component in [0, 100].
type NormPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Clamp returns a copy with both components forced into [0, 100].
func (n NormPoint) Clamp() NormPoint {
	return NormPoint{X: clampPercent(n.X), Y: clampPercent(n.Y)}
}

// Add returns n shifted by delta, clamped to [0, 100].
func (n NormPoint) Add(delta NormPoint) NormPoint {
	return NormPoint{X: n.X + delta.X, Y: n.Y + delta.Y}.Clamp()
}

// ToNormalized maps an absolute point on container to percentages,
// clamped to [0, 100]. A degenerate container (zero width or height)
// maps everything to the origin.
func ToNormalized(p Point, container Bounds) NormPoint {
	if container.Width <= 0 || container.Height <= 0 {
		return NormPoint{}
	}
	return NormPoint{
		X: p.X / container.Width * 100,
		Y: p.Y / container.Height * 100,
	}.Clamp()
}

// ToAbsolute maps a normalized point to absolute pixels on target.
func ToAbsolute(n NormPoint, target Bounds) Point {
	n = n.Clamp()
	return Point{
		X: n.X / 100 * target.Width,
		Y: n.Y / 100 * target.Height,
	}
}

// DeltaToNormalized converts an absolute pixel delta into normalized units
// relative to container. Unlike ToNormalized the result is NOT clamped:
// a drag may move left or up, so negative deltas are meaningful.
func DeltaToNormalized(delta Point, container Bounds) NormPoint {
	if container.Width <= 0 || container.Height <= 0 {
		return NormPoint{}
	}
	return NormPoint{
		X: delta.X / container.Width * 100,
		Y: delta.Y / container.Height * 100,
	}
}

// ScaleFactor is the ratio applied to size-like attributes (font size)
// when mapping from the screen surface to the export surface, so exported
// text keeps the on-screen proportion at any export resolution.
func ScaleFactor(screen, target Bounds) float64 {
	if screen.Width <= 0 {
		return 1
	}
	return target.Width / screen.Width
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
