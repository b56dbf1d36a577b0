package pencil

import (
	"fmt"

	"github.com/npillmayer/pencils/circle"
)

// Generators is the outcome of Normalize: the two circles a construction
// works on besides the reference circle.
type Generators struct {
	First, Second circle.Circle
	Ignored       int // number of candidates beyond the first three
}

// Normalize selects the two generator circles from a list of candidates.
//
// Hosts usually report the reference circle among the candidates, so the
// first three candidates c0, c1, c2 are taken and c1, c2 become the
// generators. A generator equal to the reference is replaced by c0.
// Equality is exact, as defined by circle.Equal.
//
// ErrInsufficientInput is returned for fewer than three candidates, and if
// a generator still equals the reference after the substitution.
// Candidates beyond the third are not an error; they are counted in
// Generators.Ignored for the caller to warn about.
func Normalize(reference circle.Circle, candidates []circle.Circle) (Generators, error) {
	if len(candidates) < 3 {
		return Generators{}, fmt.Errorf("%w: need 3 candidates, have %d", ErrInsufficientInput, len(candidates))
	}
	c0, c1, c2 := candidates[0], candidates[1], candidates[2]
	if reference.Equal(c1) {
		tracer().Debugf("reference equals %v, substituting %v", c1, c0)
		c1 = c0
	}
	if reference.Equal(c2) {
		tracer().Debugf("reference equals %v, substituting %v", c2, c0)
		c2 = c0
	}
	if reference.Equal(c1) || reference.Equal(c2) {
		return Generators{}, fmt.Errorf("%w: no circle distinct from reference %v", ErrInsufficientInput, reference)
	}
	g := Generators{First: c1, Second: c2, Ignored: len(candidates) - 3}
	if g.Ignored > 0 {
		tracer().Infof("more than three marks or circles selected, ignoring %d", g.Ignored)
	}
	return g, nil
}
