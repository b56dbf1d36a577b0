/*
Package selection turns selected drawing primitives into the input of a
circle construction.

A host application lets users select marks (points) and circles. The primary
selection denotes the reference circle; the secondary selection, which in
most hosts includes the primary one, supplies the candidate circles. Points
are treated as circles of radius 0.
*/
package selection

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pencils"
	"github.com/npillmayer/pencils/circle"
	"github.com/npillmayer/pencils/pencil"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pencils.selection'
func tracer() tracing.Trace {
	return tracing.Select("pencils.selection")
}

// ErrNoPrimary is returned if the primary selection holds neither a mark
// nor a circle.
var ErrNoPrimary = errors.New("primary selection must be a mark or a circle")

// Kind is the type of a selected primitive.
type Kind int8

// Kinds of primitives.
const (
	NoKind Kind = iota
	PointKind
	CircleKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "mark"
	case CircleKind:
		return "circle"
	}
	return "none"
}

// Primitive is a selected mark or circle. The zero value is no primitive
// at all and is skipped by Resolve.
type Primitive struct {
	kind Kind
	c    circle.Circle
}

// Point creates a primitive for a mark at p.
func Point(p pencils.Pair) Primitive {
	return Primitive{kind: PointKind, c: circle.FromPoint(p)}
}

// Circle creates a primitive for circle c.
func Circle(c circle.Circle) Primitive {
	return Primitive{kind: CircleKind, c: c}
}

// Kind returns the kind of primitive p.
func (p Primitive) Kind() Kind {
	return p.kind
}

// Circle returns p as a circle; marks have radius 0.
func (p Primitive) Circle() circle.Circle {
	return p.c
}

func (p Primitive) String() string {
	if p.kind == NoKind {
		return "<none>"
	}
	return fmt.Sprintf("%s %v", p.kind, p.c)
}

// Resolve builds a construction request from a primary and a secondary
// selection.
//
// The reference circle is taken from the primary selection, where a mark
// takes precedence over a circle. Candidates are all marks of the secondary
// selection followed by all of its circles, each group in selection order.
// Counting candidates is left to pencil.Normalize.
func Resolve(primary, secondary []Primitive) (pencil.Request, error) {
	req := pencil.Request{}
	ref, ok := first(primary, PointKind)
	if !ok {
		if ref, ok = first(primary, CircleKind); !ok {
			return req, ErrNoPrimary
		}
	}
	req.Reference = ref.c
	for _, kind := range []Kind{PointKind, CircleKind} {
		for _, p := range secondary {
			if p.kind == kind {
				req.Candidates = append(req.Candidates, p.c)
			}
		}
	}
	tracer().P("reference", ref).Debugf("%d candidates", len(req.Candidates))
	return req, nil
}

func first(prims []Primitive, kind Kind) (Primitive, bool) {
	for _, p := range prims {
		if p.kind == kind {
			return p, true
		}
	}
	return Primitive{}, false
}
