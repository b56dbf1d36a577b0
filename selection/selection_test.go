package selection

import (
	"errors"
	"testing"

	"github.com/npillmayer/pencils"
	"github.com/npillmayer/pencils/circle"
	"github.com/npillmayer/pencils/pencil"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitives(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Point(pencils.P(1, 2))
	assert.Equal(t, PointKind, p.Kind())
	assert.True(t, p.Circle().IsPoint())
	c := Circle(circle.WithRadius(pencils.P(0, 0), 3))
	assert.Equal(t, CircleKind, c.Kind())
	assert.Equal(t, 9.0, c.Circle().SquaredRadius())
	assert.Equal(t, "<none>", Primitive{}.String())
}

func TestResolveNoPrimary(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Resolve(nil, []Primitive{Point(pencils.P(0, 0))})
	assert.True(t, errors.Is(err, ErrNoPrimary))
	_, err = Resolve([]Primitive{{}}, nil)
	assert.True(t, errors.Is(err, ErrNoPrimary))
}

func TestResolveOrdering(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ref := circle.WithRadius(pencils.P(2, 0), 1)
	secondary := []Primitive{
		Circle(ref),
		Circle(circle.WithRadius(pencils.P(4, 0), 2)),
		Point(pencils.P(0, 0)),
		{},
		Point(pencils.P(9, 9)),
	}
	req, err := Resolve([]Primitive{Circle(ref)}, secondary)
	require.NoError(t, err)
	assert.True(t, req.Reference.Equal(ref))
	require.Len(t, req.Candidates, 4)
	assert.True(t, req.Candidates[0].Equal(circle.FromPoint(pencils.P(0, 0))))
	assert.True(t, req.Candidates[1].Equal(circle.FromPoint(pencils.P(9, 9))))
	assert.True(t, req.Candidates[2].Equal(ref))
	assert.True(t, req.Candidates[3].Equal(circle.WithRadius(pencils.P(4, 0), 2)))
}

func TestResolvePrimaryPointWins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	primary := []Primitive{
		Circle(circle.WithRadius(pencils.P(2, 0), 1)),
		Point(pencils.P(5, 5)),
	}
	req, err := Resolve(primary, nil)
	require.NoError(t, err)
	assert.True(t, req.Reference.IsPoint())
	assert.True(t, req.Reference.Center().Equal(pencils.P(5, 5)))
}

// A reference circle, a mark and a circle, selected as in a drawing: the
// reference shows up among the candidates and is replaced by the mark.
func TestResolveAndCompute(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ref := circle.WithRadius(pencils.P(6, 0), 1)
	secondary := []Primitive{
		Circle(circle.WithRadius(pencils.P(4, 0), 2)),
		Circle(ref),
		Point(pencils.P(0, 0)),
	}
	req, err := Resolve([]Primitive{Circle(ref)}, secondary)
	require.NoError(t, err)
	r, err := pencil.Compute(pencil.ModeInPencil, req)
	require.NoError(t, err)
	assert.True(t, circle.Orthogonal(r.Circle, ref), "%v not orthogonal to %v", r.Circle, ref)
	assert.Equal(t, 0, r.Ignored)
}
