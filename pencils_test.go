package pencils

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.Equal(t, 0.0, Zap(a))
	assert.True(t, Is1(1.00000001))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, 13.0, p.Dot(p))
	assert.Equal(t, 0.0, p.Cross(q))
	assert.Equal(t, 52.0, p.SquaredDist(q))
	assert.Equal(t, "(3,2)", p.String())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(math.Pi).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
	assert.True(t, P(2, 1).RotatedAround(P(1, 1), math.Pi/2).Equal(P(1, 2)))
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Rotation(math.Pi / 2).Combine(Translation(P(1, 0)))
	// rotate (1,0) to (0,1), then shift to (1,1)
	assert.True(t, m.Transform(P(1, 0)).Equal(P(1, 1)), "got %v", m.Transform(P(1, 0)))
	assert.True(t, Identity().Combine(m).Transform(P(3, 4)).Equal(m.Transform(P(3, 4))))
}
