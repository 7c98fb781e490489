package imgzoompan

import "math"

// Vec2 represents a 2D point in raster coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// finite reports whether both coordinates are finite numbers.
func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Extent is the rectangular sub-region of the raster currently mapped onto
// the viewport, in raster coordinate units. A valid extent has
// XMin < XMax and YMin < YMax.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns the horizontal span of the extent.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns the vertical span of the extent.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Contains returns true if the point lies strictly inside the extent.
func (e Extent) Contains(p Vec2) bool {
	return p.X > e.XMin && p.X < e.XMax && p.Y > e.YMin && p.Y < e.YMax
}

// Valid reports whether the extent has positive span on both axes and
// finite bounds.
func (e Extent) Valid() bool {
	return e.finite() && e.XMin < e.XMax && e.YMin < e.YMax
}

func (e Extent) finite() bool {
	return (Vec2{e.XMin, e.YMin}).finite() && (Vec2{e.XMax, e.YMax}).finite()
}

// round snaps all four bounds to integers. Non-integer extents cause the
// host to resample the raster on every redraw, which shows up as shimmer
// while panning.
func (e Extent) round() Extent {
	return Extent{
		XMin: math.Round(e.XMin),
		XMax: math.Round(e.XMax),
		YMin: math.Round(e.YMin),
		YMax: math.Round(e.YMax),
	}
}

// RasterBounds holds the full pixel dimensions of the displayed raster.
// A zero value for either dimension means the bounds are unknown and the
// controller performs unclamped zoom/pan on that axis.
type RasterBounds struct {
	Width, Height float64
}

// Known reports whether both dimensions are enforced.
func (b RasterBounds) Known() bool { return b.Width > 0 && b.Height > 0 }
