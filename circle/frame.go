package circle

import (
	"math"

	"github.com/npillmayer/pencils"
)

// Frame is a similarity transform which maps a group of circles to unit
// scale: the centroid of their centers goes to the origin, and the largest
// center offset or radius becomes 1.
//
// Orthogonality, pencil membership and radical axes are invariant under
// similarities, so constructions may be carried out in the frame, where
// the ε of package pencils is a relative tolerance.
type Frame struct {
	origin pencils.Pair
	scale  float64
}

// FrameOf returns the unit frame of a group of circles.
func FrameOf(cs ...Circle) Frame {
	f := Frame{scale: 1}
	if len(cs) == 0 {
		return f
	}
	for _, c := range cs {
		f.origin += c.center
	}
	f.origin = f.origin.Scaled(1 / float64(len(cs)))
	s := 0.0
	for _, c := range cs {
		d := c.center - f.origin
		s = math.Max(s, math.Max(math.Abs(d.X()), math.Abs(d.Y())))
		s = math.Max(s, math.Sqrt(math.Abs(c.sqr)))
	}
	if s > 0 && pencils.IsFinite(s) {
		f.scale = s
	}
	return f
}

// Scale returns the length which the frame maps to 1.
func (f Frame) Scale() float64 {
	return f.scale
}

// Map transforms c into the frame.
func (f Frame) Map(c Circle) Circle {
	return Circle{
		center: f.MapPoint(c.center),
		sqr:    c.sqr / (f.scale * f.scale),
	}
}

// MapPoint transforms p into the frame.
func (f Frame) MapPoint(p pencils.Pair) pencils.Pair {
	return (p - f.origin).Scaled(1 / f.scale)
}

// UnmapPoint transforms p from the frame back to the original coordinates.
func (f Frame) UnmapPoint(p pencils.Pair) pencils.Pair {
	return p.Scaled(f.scale).Shifted(f.origin)
}
