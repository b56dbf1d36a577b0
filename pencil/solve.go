package pencil

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pencils/circle"
	"github.com/npillmayer/pencils/polyn"
)

// varT is the position of the pencil parameter t in polynomials.
const varT = 1

// CircleInPencil returns the circle of the pencil spanned by gen1 and gen2
// which is orthogonal to reference.
//
// The result may be imaginary. Identical generators yield
// ErrDegeneratePencil, and ErrNoSolution or ErrIndeterminate are returned if
// none or all of the pencil's circles are orthogonal to reference.
func CircleInPencil(reference, gen1, gen2 circle.Circle) (circle.Circle, error) {
	p, err := New(gen1, gen2)
	if err != nil {
		return circle.Circle{}, err
	}
	c, _, err := p.OrthogonalMember(reference)
	return c, err
}

// OrthogonalMember returns the member of the pencil orthogonal to reference,
// together with its parameter t.
//
// For a member with coefficients (a,b,c) and reference (p,q,r),
// orthogonality means 2ap + 2bq − c − r = 0. The member's coefficients are
// affine in t, so this is a linear equation α·t + β = 0.
//
// The equation is set up in the unit frame of the three circles. t does not
// change under similarities, so the member is taken from the original
// generators.
func (p Pencil) OrthogonalMember(reference circle.Circle) (circle.Circle, float64, error) {
	f := circle.FrameOf(reference, p.c1, p.c2)
	eq := orthogonalityEquation(f.Map(reference), f.Map(p.c1), f.Map(p.c2))
	trace := tracer().P("pencil", fmt.Sprintf("%v|%v", p.c1, p.c2))
	if beta, isconst := eq.IsConstant(); isconst { // α = 0
		if beta == 0 {
			trace.Infof("every member is orthogonal to %v", reference)
			return circle.Circle{}, 0, fmt.Errorf("%w: %v", ErrIndeterminate, reference)
		}
		trace.Infof("only the radical axis is orthogonal to %v", reference)
		return circle.Circle{}, 0, fmt.Errorf("%w: %v", ErrNoSolution, reference)
	}
	leq := polyn.NewLinEqSolver()
	leq.SetVariableResolver(parameter{})
	if _, err := leq.AddEq(eq); err != nil {
		return circle.Circle{}, 0, err
	}
	t, ok := leq.Value(varT)
	if !ok {
		return circle.Circle{}, 0, fmt.Errorf("%w: %v", ErrIndeterminate, reference)
	}
	c := p.Member(t)
	trace.Debugf("t = %g, member orthogonal to %v is %v", t, reference, c)
	return c, t, nil
}

// orthogonalityEquation builds the polynomial β + α·t, which is 0 for the
// member at t of the pencil (gen1, gen2) orthogonal to reference.
func orthogonalityEquation(reference, gen1, gen2 circle.Circle) polyn.Polynomial {
	a1, b1, k1 := gen1.Coefficients()
	a2, b2, k2 := gen2.Coefficients()
	rp, rq, rk := reference.Coefficients()
	a, _ := polyn.New(a1, polyn.X{I: varT, C: a2 - a1}) // a(t)
	b, _ := polyn.New(b1, polyn.X{I: varT, C: b2 - b1}) // b(t)
	k, _ := polyn.New(k1, polyn.X{I: varT, C: k2 - k1}) // c(t)
	eq := a.Scale(2*rp).Add(b.Scale(2*rq), false).Subtract(k, false)
	eq = eq.Subtract(polyn.NewConstantPolynomial(rk), false)
	return eq.Zap()
}

// CircleOrthogonalToThree returns the circle orthogonal to c0, c1 and c2.
// Its center is the radical center of the three circles, its squared radius
// the power of the radical center with respect to any of them. If the
// radical center lies inside the circles, the result is imaginary.
//
// Concentric circles yield ErrConcentricPair, circles with collinear centers
// ErrCollinearCenters.
func CircleOrthogonalToThree(c0, c1, c2 circle.Circle) (circle.Circle, error) {
	center, err := circle.RadicalCenter(c0, c1, c2)
	switch {
	case errors.Is(err, circle.ErrConcentric):
		return circle.Circle{}, fmt.Errorf("%w: %w", ErrConcentricPair, err)
	case errors.Is(err, circle.ErrCollinear):
		return circle.Circle{}, fmt.Errorf("%w: %w", ErrCollinearCenters, err)
	case err != nil:
		return circle.Circle{}, err
	}
	c := circle.New(center, c0.Power(center))
	tracer().P("op", "orthogonal to three").Debugf("%v", c)
	return c, nil
}

// parameter names the pencil parameter for tracing.
type parameter struct{}

func (parameter) GetVariableName(int) string     { return "t" }
func (parameter) SetVariableSolved(int, float64) {}
