package pencil

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pencils/circle"
)

// Mode selects a construction.
type Mode int

// Modes offered to callers. ModeHelp is handled by callers and never
// reaches Compute.
const (
	ModeInPencil   Mode = iota // circle in pencil orthogonal to a circle
	ModeOrthogonal             // circle orthogonal to three circles
	ModeHelp                   // show help
)

// ErrHelpMode indicates a call to Compute with ModeHelp or an unknown mode.
var ErrHelpMode = errors.New("mode does not compute a circle")

var modeLabels = [...]string{
	"Circle in pencil orthogonal to circle",
	"Circle orthogonal to three circles",
	"Help",
}

var modeHelp = [...]string{
	"Draw the circle orthogonal to a circle (primary selection) in the pencil generated by two circles",
	"Draw the circle orthogonal to three circles",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeLabels) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeLabels[m]
}

// Help returns a help message for a construction mode.
func (m Mode) Help() string {
	if m < 0 || int(m) >= len(modeHelp) {
		return ""
	}
	return modeHelp[m]
}

// Request is the input of a construction: the reference circle (primary
// selection) and the candidate circles (secondary selection, in order).
type Request struct {
	Reference  circle.Circle
	Candidates []circle.Circle
}

// Result is the outcome of a construction.
type Result struct {
	Circle    circle.Circle
	Imaginary bool // squared radius < 0
	Ignored   int  // candidates which did not take part
}

// Drawable is a predicate: has the result a positive squared radius?
func (r Result) Drawable() bool {
	return r.Circle.IsDrawable()
}

// Compute normalizes the request and runs the construction selected by
// mode. Errors are the ones of Normalize, CircleInPencil and
// CircleOrthogonalToThree; ModeHelp yields ErrHelpMode.
func Compute(mode Mode, req Request) (Result, error) {
	if mode != ModeInPencil && mode != ModeOrthogonal {
		return Result{}, fmt.Errorf("%w: %v", ErrHelpMode, mode)
	}
	gen, err := Normalize(req.Reference, req.Candidates)
	if err != nil {
		return Result{}, err
	}
	var c circle.Circle
	switch mode {
	case ModeInPencil:
		c, err = CircleInPencil(req.Reference, gen.First, gen.Second)
	case ModeOrthogonal:
		c, err = CircleOrthogonalToThree(req.Reference, gen.First, gen.Second)
	}
	if err != nil {
		tracer().P("mode", mode).Infof("%v", err)
		return Result{Ignored: gen.Ignored}, err
	}
	return Result{Circle: c, Imaginary: c.IsImaginary(), Ignored: gen.Ignored}, nil
}
