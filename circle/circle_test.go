package circle

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/pencils"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleBasics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := WithRadius(pencils.P(1, 2), 3)
	assert.Equal(t, 9.0, c.SquaredRadius())
	r, ok := c.Radius()
	assert.True(t, ok)
	assert.Equal(t, 3.0, r)
	assert.True(t, c.IsDrawable())
	assert.False(t, c.IsPoint())
	p := FromPoint(pencils.P(4, 4))
	assert.True(t, p.IsPoint())
	assert.False(t, p.IsDrawable())
	im := New(pencils.Origin, -4)
	assert.True(t, im.IsImaginary())
	r, ok = im.Radius()
	assert.False(t, ok)
	assert.Equal(t, 2.0, r)
	assert.Equal(t, "circle((1,2), r²=9)", c.String())
	assert.False(t, New(pencils.P(math.NaN(), 0), 1).IsValid())
}

func TestCircleEquality(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := New(pencils.P(1, 1), 2)
	assert.True(t, a.Equal(New(pencils.P(1, 1), 2)))
	assert.False(t, a.Equal(New(pencils.P(1, 1), 2.00000001)))
	assert.True(t, a.AlmostEqual(New(pencils.P(1, 1), 2.00000001)))
	assert.False(t, a.Equal(New(pencils.P(1, 1.5), 2)))
}

func TestCoefficientsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(pencils.P(3, -2), 5)
	a, b, k := c.Coefficients()
	assert.Equal(t, 3.0, a)
	assert.Equal(t, -2.0, b)
	assert.Equal(t, 8.0, k)
	assert.True(t, FromCoefficients(a, b, k).Equal(c))
}

func TestPower(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := WithRadius(pencils.P(0, 0), 2)
	assert.Equal(t, 5.0, c.Power(pencils.P(3, 0)))
	assert.Equal(t, 0.0, c.Power(pencils.P(0, 2)))
	assert.Equal(t, -4.0, c.Power(pencils.Origin))
	// the algebraic form evaluates to the power
	p := pencils.P(1.5, -0.5)
	lin := c.LinearForm().Eval(map[int]float64{VarX: p.X(), VarY: p.Y()})
	assert.InDelta(t, c.Power(p), p.Dot(p)+lin, 1e-9)
}

func TestOrthogonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := WithRadius(pencils.P(0, 0), 3)
	b := WithRadius(pencils.P(5, 0), 4)
	assert.True(t, Orthogonal(a, b))
	assert.True(t, Orthogonal(b, a))
	c := WithRadius(pencils.P(5, 0), 3)
	assert.False(t, Orthogonal(a, c))
	// a point is orthogonal to circles through it
	assert.True(t, Orthogonal(FromPoint(pencils.P(0, 3)), a))
	assert.False(t, Orthogonal(FromPoint(pencils.P(0, 2)), a))
}

func TestOrthogonalSymmetry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circles := []Circle{
		New(pencils.P(0, 0), 4),
		New(pencils.P(1.25, -3), 0),
		New(pencils.P(-2, 7.5), 12.25),
		New(pencils.P(3, 3), -2),
		New(pencils.P(0.1, 0.2), 0.05),
	}
	for _, a := range circles {
		for _, b := range circles {
			assert.Equal(t, Orthogonal(a, b), Orthogonal(b, a), "%v vs %v", a, b)
		}
	}
}

func TestRadicalAxis(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := WithRadius(pencils.P(0, 0), 2)
	b := WithRadius(pencils.P(4, 0), 2)
	axis, err := RadicalAxis(a, b)
	require.NoError(t, err)
	// the axis is x = 2
	for _, y := range []float64{-3, 0, 1, 10} {
		p := pencils.P(2, y)
		assert.InDelta(t, 0.0, axis.Eval(map[int]float64{VarX: p.X(), VarY: p.Y()}), 1e-9)
		assert.InDelta(t, a.Power(p), b.Power(p), 1e-9)
	}
	_, err = RadicalAxis(a, WithRadius(pencils.P(0, 0), 1))
	assert.True(t, errors.Is(err, ErrConcentric))
	_, err = RadicalAxis(a, a)
	assert.True(t, errors.Is(err, ErrConcentric))
}

func TestRadicalCenter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c0 := WithRadius(pencils.P(0, 0), 1)
	c1 := WithRadius(pencils.P(6, 0), 2)
	c2 := WithRadius(pencils.P(1, 5), 1.5)
	p, err := RadicalCenter(c0, c1, c2)
	require.NoError(t, err)
	assert.InDelta(t, c0.Power(p), c1.Power(p), 1e-6)
	assert.InDelta(t, c0.Power(p), c2.Power(p), 1e-6)
}

func TestRadicalCenterDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c0 := WithRadius(pencils.P(0, 0), 1)
	c1 := WithRadius(pencils.P(2, 0), 1)
	c2 := WithRadius(pencils.P(5, 0), 2)
	_, err := RadicalCenter(c0, c1, c2)
	assert.True(t, errors.Is(err, ErrCollinear), "got %v", err)
	_, err = RadicalCenter(c0, c1, WithRadius(pencils.P(2, 0), 3))
	assert.True(t, errors.Is(err, ErrConcentric), "got %v", err)
	_, err = RadicalCenter(c0, WithRadius(pencils.P(0, 0), 3), c2)
	assert.True(t, errors.Is(err, ErrConcentric), "got %v", err)
}

func TestRigidMotion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New(pencils.P(1, 0), 2)
	s := c.Shifted(pencils.P(-1, 3))
	assert.True(t, s.Center().Equal(pencils.P(0, 3)))
	assert.Equal(t, 2.0, s.SquaredRadius())
	r := c.Rotated(math.Pi / 2)
	assert.True(t, r.Center().Equal(pencils.P(0, 1)))
	assert.True(t, c.Center().Equal(pencils.P(1, 0)), "original must not change")
}

func TestFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := New(pencils.P(1000, 2000), 4e6)
	b := New(pencils.P(3000, 2000), 1e4)
	f := FrameOf(a, b)
	assert.InDelta(t, 2000.0, f.Scale(), 1e-9)
	ua, ub := f.Map(a), f.Map(b)
	assert.True(t, ua.Center().Equal(pencils.P(-0.5, 0)))
	assert.True(t, ub.Center().Equal(pencils.P(0.5, 0)))
	assert.InDelta(t, 1.0, ua.SquaredRadius(), 1e-12)
	p := pencils.P(1234.5, -17)
	assert.True(t, f.UnmapPoint(f.MapPoint(p)).Equal(p))
	// orthogonality survives the similarity
	c := New(pencils.P(0, 0), 9)
	d := New(pencils.P(5, 0), 16)
	g := FrameOf(c, d)
	assert.True(t, Orthogonal(g.Map(c), g.Map(d)))
	assert.Equal(t, 1.0, FrameOf().Scale())
	assert.Equal(t, 1.0, FrameOf(FromPoint(pencils.P(3, 3))).Scale())
}

func TestRadicalGeometryAcrossScales(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, s := range []float64{1e-8, 1e-4, 1, 1e4, 1e8} {
		scaled := func(x, y, r float64) Circle {
			return WithRadius(pencils.P(x*s, y*s), r*s)
		}
		c0, c1, c2 := scaled(0, 0, 1), scaled(6, 0, 2), scaled(1, 5, 1.5)
		p, err := RadicalCenter(c0, c1, c2)
		require.NoError(t, err, "scale %g", s)
		pw := c0.Power(p)
		assert.InDelta(t, 1.0, c1.Power(p)/pw, 1e-9, "scale %g", s)
		assert.InDelta(t, 1.0, c2.Power(p)/pw, 1e-9, "scale %g", s)
		//
		axis, err := RadicalAxis(c0, c1)
		require.NoError(t, err, "scale %g", s)
		q := pencils.P(p.X(), 3*s)
		// points on the axis have equal power, relative to s²
		x := -(axis.GetConstantValue() + axis.GetCoeffForTerm(VarY)*q.Y()) / axis.GetCoeffForTerm(VarX)
		q = pencils.P(x, q.Y())
		assert.InDelta(t, 0.0, (c0.Power(q)-c1.Power(q))/(s*s), 1e-9, "scale %g", s)
		//
		_, err = RadicalCenter(c0, scaled(2, 0, 1), scaled(7, 0, 3))
		assert.True(t, errors.Is(err, ErrCollinear), "scale %g: got %v", s, err)
		_, err = RadicalAxis(c0, scaled(0, 0, 3))
		assert.True(t, errors.Is(err, ErrConcentric), "scale %g: got %v", s, err)
		assert.True(t, Orthogonal(scaled(0, 0, 3), scaled(5, 0, 4)), "scale %g", s)
		assert.False(t, Orthogonal(scaled(0, 0, 3), scaled(5, 0, 3)), "scale %g", s)
	}
}
