package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/pencils"
	"github.com/npillmayer/pencils/circle"
	"github.com/npillmayer/pencils/selection"
)

// ErrScene is returned for malformed scene files.
var ErrScene = errors.New("invalid scene")

// scene is the content of a scene file:
//
//	[primary]
//	circle = [6.0, 0.0, 1.0]   # x, y, radius
//
//	[[secondary]]
//	point = [0.0, 0.0]         # x, y
type scene struct {
	Primary   primitive   `toml:"primary"`
	Secondary []primitive `toml:"secondary"`
}

// primitive is a mark or a circle. A table holding both yields both, the
// mark first.
type primitive struct {
	Point  []float64 `toml:"point"`
	Circle []float64 `toml:"circle"`
}

func loadScene(path string) (scene, error) {
	var sc scene
	md, err := toml.DecodeFile(path, &sc)
	if err != nil {
		return sc, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return sc, fmt.Errorf("%w: unknown keys %s in %s", ErrScene, strings.Join(keys, ", "), path)
	}
	return sc, nil
}

// primitives converts the scene into primary and secondary selections.
func (sc scene) primitives() ([]selection.Primitive, []selection.Primitive, error) {
	primary, err := sc.Primary.resolve("primary")
	if err != nil {
		return nil, nil, err
	}
	var secondary []selection.Primitive
	for i, p := range sc.Secondary {
		prims, err := p.resolve(fmt.Sprintf("secondary[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		secondary = append(secondary, prims...)
	}
	return primary, secondary, nil
}

func (p primitive) resolve(where string) ([]selection.Primitive, error) {
	var prims []selection.Primitive
	if p.Point != nil {
		if len(p.Point) != 2 {
			return nil, fmt.Errorf("%w: %s: point needs [x, y]", ErrScene, where)
		}
		prims = append(prims, selection.Point(pencils.P(p.Point[0], p.Point[1])))
	}
	if p.Circle != nil {
		if len(p.Circle) != 3 {
			return nil, fmt.Errorf("%w: %s: circle needs [x, y, radius]", ErrScene, where)
		}
		if p.Circle[2] < 0 {
			return nil, fmt.Errorf("%w: %s: negative radius %g", ErrScene, where, p.Circle[2])
		}
		c := circle.WithRadius(pencils.P(p.Circle[0], p.Circle[1]), p.Circle[2])
		prims = append(prims, selection.Circle(c))
	}
	for _, prim := range prims {
		if !prim.Circle().IsValid() {
			return nil, fmt.Errorf("%w: %s: coordinates must be finite", ErrScene, where)
		}
	}
	return prims, nil
}
