/*
Package circle represents circles as immutable values.

A circle is stored as its center and its squared radius. Points are circles
of squared radius 0, and a negative squared radius denotes an imaginary
circle: an algebraically valid circle without a real locus.

Every circle has an algebraic form

	x² + y² − 2ax − 2by + c = 0,   c = a² + b² − r²

with center (a,b). Subtracting the forms of two circles cancels the
quadratic terms, which is why radical axes and orthogonality conditions are
linear and may be handed to package polyn.
*/
package circle

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/pencils"
	"github.com/npillmayer/pencils/polyn"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pencils.circle'
func tracer() tracing.Trace {
	return tracing.Select("pencils.circle")
}

// Variables of the linear forms in (x,y), as positions in a polyn.Polynomial.
const (
	VarX = 1
	VarY = 2
)

var (
	// ErrConcentric indicates two concentric circles, which have no radical axis.
	ErrConcentric = errors.New("circles are concentric")
	// ErrCollinear indicates three circles with collinear centers, which have
	// no radical center.
	ErrCollinear = errors.New("centers of circles are collinear")
)

// Circle is a circle in the plane, given by center and squared radius.
type Circle struct {
	center pencils.Pair
	sqr    float64
}

// New creates a circle from its center and squared radius.
func New(center pencils.Pair, squaredRadius float64) Circle {
	return Circle{center: center, sqr: squaredRadius}
}

// WithRadius creates a circle from its center and radius.
func WithRadius(center pencils.Pair, r float64) Circle {
	return Circle{center: center, sqr: r * r}
}

// FromPoint creates a circle of radius 0.
func FromPoint(p pencils.Pair) Circle {
	return Circle{center: p}
}

// FromCoefficients creates a circle from its algebraic form
// x² + y² − 2ax − 2by + c = 0.
func FromCoefficients(a, b, c float64) Circle {
	return Circle{center: pencils.P(a, b), sqr: a*a + b*b - c}
}

// Center returns the center of c.
func (c Circle) Center() pencils.Pair {
	return c.center
}

// SquaredRadius returns r², which may be negative for imaginary circles.
func (c Circle) SquaredRadius() float64 {
	return c.sqr
}

// Radius returns the radius of c. For imaginary circles it returns the
// radius of the real circle with squared radius |r²| and false.
func (c Circle) Radius() (float64, bool) {
	if c.sqr < 0 {
		return math.Sqrt(-c.sqr), false
	}
	return math.Sqrt(c.sqr), true
}

// IsPoint is a predicate: is c a circle of radius 0?
func (c Circle) IsPoint() bool {
	return c.sqr == 0
}

// IsImaginary is a predicate: has c a negative squared radius?
func (c Circle) IsImaginary() bool {
	return c.sqr < 0
}

// IsDrawable is a predicate: has c a positive squared radius?
// Points and imaginary circles have no visible locus.
func (c Circle) IsDrawable() bool {
	return c.sqr > 0
}

// IsValid is a predicate: are all components of c finite?
func (c Circle) IsValid() bool {
	return c.center.IsFinite() && pencils.IsFinite(c.sqr)
}

// Equal compares two circles. Centers and squared radii have to match
// exactly.
func (c Circle) Equal(d Circle) bool {
	return c.center == d.center && c.sqr == d.sqr
}

// AlmostEqual compares two circles up to ε.
func (c Circle) AlmostEqual(d Circle) bool {
	return c.center.Equal(d.center) && pencils.Is0(c.sqr-d.sqr)
}

// Coefficients returns (a,b,c) of the algebraic form
// x² + y² − 2ax − 2by + c = 0 of circle c.
func (c Circle) Coefficients() (float64, float64, float64) {
	a, b := c.center.F()
	return a, b, a*a + b*b - c.sqr
}

// Power returns the power of point p with respect to c: positive outside,
// zero on, negative inside of c.
func (c Circle) Power(p pencils.Pair) float64 {
	return p.SquaredDist(c.center) - c.sqr
}

// LinearForm returns the non-quadratic part −2ax − 2by + c of the algebraic
// form of circle c, as a polynomial in VarX and VarY.
func (c Circle) LinearForm() polyn.Polynomial {
	a, b, k := c.Coefficients()
	p, _ := polyn.New(k, polyn.X{I: VarX, C: -2 * a}, polyn.X{I: VarY, C: -2 * b})
	return p
}

// Shifted returns circle c translated by v.
func (c Circle) Shifted(v pencils.Pair) Circle {
	return c.Transformed(pencils.Translation(v))
}

// Rotated returns circle c rotated around the origin by theta
// (counterclockwise).
func (c Circle) Rotated(theta float64) Circle {
	return c.Transformed(pencils.Rotation(theta))
}

// Transformed applies a rigid motion to c. Only translations, rotations and
// their combinations keep the radius; other transforms are the caller's
// responsibility.
func (c Circle) Transformed(m pencils.AT) Circle {
	return Circle{center: m.Transform(c.center), sqr: c.sqr}
}

// String returns a readable representation like "circle((2,0), r²=1)".
func (c Circle) String() string {
	return fmt.Sprintf("circle(%v, r²=%g)", c.center, c.sqr)
}

// Orthogonal is a predicate: do circles a and b intersect at right angles?
// This is the case iff |a.center − b.center|² = a.r² + b.r², which extends
// to points (a point is orthogonal to every circle through it) and to
// imaginary circles.
//
// The comparison is relative to the magnitude of the squared distance and
// the squared radii, so it does not depend on the scale of the drawing.
func Orthogonal(a, b Circle) bool {
	d := a.center.SquaredDist(b.center)
	scale := math.Max(d, math.Abs(a.sqr)+math.Abs(b.sqr))
	if scale == 0 {
		return true // coinciding points
	}
	return pencils.Is0((d - (a.sqr + b.sqr)) / scale)
}

// RadicalAxis returns the radical axis of two circles as a linear polynomial
// in VarX and VarY: the points (x,y) of equal power with respect to a and b
// are the roots of the polynomial. The polynomial is scaled so that its
// linear part has a magnitude of about 1.
// Concentric circles have no radical axis and ErrConcentric is returned.
// Concentricity is decided relative to the size of the circles.
func RadicalAxis(a, b Circle) (polyn.Polynomial, error) {
	f := FrameOf(a, b)
	axis, err := unitRadicalAxis(f.Map(a), f.Map(b))
	if err != nil {
		return polyn.Polynomial{}, fmt.Errorf("%w: %v and %v", err, a, b)
	}
	// substitute u = (x−o)/s into c + α·u + β·v and multiply by s;
	// the constant is in units of the drawing and must not be zapped
	alpha, beta := axis.GetCoeffForTerm(VarX), axis.GetCoeffForTerm(VarY)
	ox, oy := f.origin.F()
	p := polyn.NewConstantPolynomial(0)
	p.SetTerm(0, axis.GetConstantValue()*f.scale-alpha*ox-beta*oy)
	if alpha != 0 {
		p.SetTerm(VarX, alpha)
	}
	if beta != 0 {
		p.SetTerm(VarY, beta)
	}
	tracer().P("op", "radical axis").Debugf("0 = %s", p)
	return p, nil
}

// unitRadicalAxis is the radical axis of two circles mapped to a unit frame.
func unitRadicalAxis(a, b Circle) (polyn.Polynomial, error) {
	if a.center.Equal(b.center) {
		return polyn.Polynomial{}, ErrConcentric
	}
	axis := a.LinearForm().Subtract(b.LinearForm(), false).Zap()
	if _, isconst := axis.IsConstant(); isconst {
		return polyn.Polynomial{}, ErrConcentric
	}
	return axis, nil
}

// RadicalCenter returns the point of equal power with respect to three
// circles. It is the intersection of the radical axes of (c0,c1) and (c0,c2).
// If any pair of circles is concentric, ErrConcentric is returned. If the
// centers are collinear, the axes are parallel and ErrCollinear is returned.
//
// The axes are solved in the unit frame of the three circles, so the
// tolerances are relative to their size.
func RadicalCenter(c0, c1, c2 Circle) (pencils.Pair, error) {
	f := FrameOf(c0, c1, c2)
	u0, u1, u2 := f.Map(c0), f.Map(c1), f.Map(c2)
	if u1.center.Equal(u2.center) {
		return pencils.Origin, fmt.Errorf("%w: %v and %v", ErrConcentric, c1, c2)
	}
	axis1, err := unitRadicalAxis(u0, u1)
	if err != nil {
		return pencils.Origin, fmt.Errorf("%w: %v and %v", err, c0, c1)
	}
	axis2, err := unitRadicalAxis(u0, u2)
	if err != nil {
		return pencils.Origin, fmt.Errorf("%w: %v and %v", err, c0, c2)
	}
	// sine of the angle between the center offsets
	d1, d2 := u1.center-u0.center, u2.center-u0.center
	if pencils.Is0(d1.Cross(d2) / math.Sqrt(d1.Dot(d1)*d2.Dot(d2))) {
		return pencils.Origin, fmt.Errorf("%w: %v, %v, %v", ErrCollinear, c0.center, c1.center, c2.center)
	}
	leq := polyn.NewLinEqSolver()
	leq.SetVariableResolver(coordinates{})
	if _, err = leq.AddEqs([]polyn.Polynomial{axis1, axis2}); err != nil {
		if errors.Is(err, polyn.ErrInconsistentEquation) {
			return pencils.Origin, fmt.Errorf("%w: %v", ErrCollinear, err)
		}
		return pencils.Origin, err
	}
	x, okx := leq.Value(VarX)
	y, oky := leq.Value(VarY)
	if !okx || !oky {
		return pencils.Origin, fmt.Errorf("%w: radical axes coincide", ErrCollinear)
	}
	p := f.UnmapPoint(pencils.P(x, y))
	tracer().P("op", "radical center").Debugf("%v", p)
	return p, nil
}

// coordinates names the variables of the linear forms for tracing.
type coordinates struct{}

func (coordinates) GetVariableName(i int) string {
	switch i {
	case VarX:
		return "x"
	case VarY:
		return "y"
	}
	return fmt.Sprintf("x.%d", i)
}

func (coordinates) SetVariableSolved(int, float64) {}
