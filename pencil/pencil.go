/*
Package pencil constructs circles orthogonal to other circles.

Two constructions are offered:

  - CircleInPencil finds the circle of the pencil spanned by two generator
    circles which is orthogonal to a reference circle.
  - CircleOrthogonalToThree finds the circle orthogonal to three circles.

Both reduce to linear equations (the quadratic terms of the circles'
algebraic forms cancel) and are solved in closed form with package polyn.
A result may be imaginary, i.e. have a negative squared radius; this is a
valid outcome and not an error. Degenerate configurations are reported as
distinct errors and never guessed around.

Compute wraps both constructions for callers which hold a reference circle
and a list of selected candidate circles, see Normalize.
*/
package pencil

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pencils"
	"github.com/npillmayer/pencils/circle"
	"github.com/npillmayer/pencils/polyn"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pencils.pencil'
func tracer() tracing.Trace {
	return tracing.Select("pencils.pencil")
}

var (
	// ErrInsufficientInput indicates fewer distinct circles than a construction needs.
	ErrInsufficientInput = errors.New("not enough marks or circles selected")
	// ErrDegeneratePencil indicates two identical generators, which span no pencil.
	ErrDegeneratePencil = errors.New("pencil generators coincide")
	// ErrNoSolution indicates that no member of a pencil is orthogonal to the
	// reference circle; only the radical axis of the pencil would be.
	ErrNoSolution = errors.New("no circle of the pencil is orthogonal")
	// ErrIndeterminate indicates that every member of a pencil is orthogonal
	// to the reference circle.
	ErrIndeterminate = errors.New("every circle of the pencil is orthogonal")
	// ErrConcentricPair indicates concentric circles among the input of the
	// three-circle construction.
	ErrConcentricPair = errors.New("concentric circles")
	// ErrCollinearCenters indicates three circles with collinear centers.
	ErrCollinearCenters = errors.New("collinear centers")
)

// Pencil is the one-parameter family of circles spanned by two distinct
// circles C1 and C2:
//
//	member(t) = (1−t)·C1 + t·C2
//
// taken on the algebraic forms of the circles. member(∞) is the radical axis
// of C1 and C2, which is a line and not a circle.
type Pencil struct {
	c1, c2 circle.Circle
}

// New creates the pencil spanned by c1 and c2. Identical circles span no
// pencil and ErrDegeneratePencil is returned.
func New(c1, c2 circle.Circle) (Pencil, error) {
	if c1.Equal(c2) {
		return Pencil{}, fmt.Errorf("%w: %v", ErrDegeneratePencil, c1)
	}
	return Pencil{c1: c1, c2: c2}, nil
}

// Generators returns the two circles spanning the pencil.
func (p Pencil) Generators() (circle.Circle, circle.Circle) {
	return p.c1, p.c2
}

// Member returns the member of the pencil at parameter t. Member(0) is the
// first generator, Member(1) the second one.
func (p Pencil) Member(t float64) circle.Circle {
	a1, b1, k1 := p.c1.Coefficients()
	a2, b2, k2 := p.c2.Coefficients()
	return circle.FromCoefficients(
		(1-t)*a1+t*a2,
		(1-t)*b1+t*b2,
		(1-t)*k1+t*k2,
	)
}

// RadicalAxis returns the line member of the pencil (t = ∞) as a linear
// polynomial in circle.VarX and circle.VarY. Pencils of concentric circles
// have no radical axis.
func (p Pencil) RadicalAxis() (polyn.Polynomial, error) {
	return circle.RadicalAxis(p.c1, p.c2)
}

// Contains is a predicate: is c a member of the pencil? This is the case if
// the coefficients of c are an affine combination of the coefficients of
// the generators. The test is carried out in the unit frame of the three
// circles.
func (p Pencil) Contains(c circle.Circle) bool {
	f := circle.FrameOf(p.c1, p.c2, c)
	a1, b1, k1 := f.Map(p.c1).Coefficients()
	a2, b2, k2 := f.Map(p.c2).Coefficients()
	a, b, k := f.Map(c).Coefficients()
	d := [3]float64{a2 - a1, b2 - b1, k2 - k1}
	e := [3]float64{a - a1, b - b1, k - k1}
	// e must be parallel to d
	return pencils.Is0(d[1]*e[2]-d[2]*e[1]) &&
		pencils.Is0(d[2]*e[0]-d[0]*e[2]) &&
		pencils.Is0(d[0]*e[1]-d[1]*e[0])
}
