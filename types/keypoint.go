package types

import "math"

// Point is a 2D keypoint coordinate in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Hypot(dx, dy)
}

// BBox is an axis-aligned bounding box in xyxy format.
type BBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Width returns x2 - x1.
func (b BBox) Width() float64 { return b.X2 - b.X1 }

// Height returns y2 - y1.
func (b BBox) Height() float64 { return b.Y2 - b.Y1 }

// LongestSide returns the larger of width and height. This is the
// bounding-box normalization size used by PCK.
func (b BBox) LongestSide() float64 {
	return math.Max(b.Width(), b.Height())
}
