package cmd

import (
	"errors"
	"fmt"
	"io"

	"deedles.dev/xrect/anchor"
	"deedles.dev/xrect/geom"
	"deedles.dev/xrect/internal/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrNonFinite is returned when a computation produced an infinite or
// NaN coordinate, which happens for degenerate inputs.
var ErrNonFinite = errors.New("result is not finite")

type point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func pointOf(v geom.Vec) point {
	return point{X: v.X, Y: v.Y}
}

func (p point) Vec() geom.Vec {
	return geom.V(p.X, p.Y)
}

// UnmarshalYAML accepts both the mapping form {x: 1, y: 2} and the
// short sequence form [1, 2].
func (p *point) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var xy []float64
		err := node.Decode(&xy)
		if err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %v: point needs 2 coordinates, got %v", node.Line, len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	}

	type plain point
	return node.Decode((*plain)(p))
}

type rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func rectOf(r geom.RectSpec) rect {
	return rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r rect) RectSpec() geom.RectSpec {
	return geom.RectSpec{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// write prints v in the configured output format. text is used for
// the text format.
func (a *app) write(w io.Writer, text string, v any) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)

	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err != nil {
			return err
		}
		return enc.Close()

	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

// rectFlags registers the flags used to describe the input rectangle.
type rectFlags struct {
	center  []float64
	corners []float64
}

func (f *rectFlags) register(flags *pflag.FlagSet) {
	flags.Float64SliceVar(&f.center, "rect", nil, "rectangle as center and extents: x,y,width,height")
	flags.Float64SliceVar(&f.corners, "corners", nil, "rectangle as corners: left,top,right,bottom")
}

func (f *rectFlags) rect() (geom.RectSpec, error) {
	switch {
	case f.center != nil && f.corners != nil:
		return geom.RectSpec{}, errors.New("--rect and --corners are mutually exclusive")

	case f.center != nil:
		if len(f.center) != 4 {
			return geom.RectSpec{}, fmt.Errorf("--rect needs 4 values, got %v", len(f.center))
		}
		return geom.Rs(geom.V(f.center[0], f.center[1]), f.center[2], f.center[3]), nil

	case f.corners != nil:
		if len(f.corners) != 4 {
			return geom.RectSpec{}, fmt.Errorf("--corners needs 4 values, got %v", len(f.corners))
		}
		return geom.FromCorners(f.corners[0], f.corners[1], f.corners[2], f.corners[3]), nil

	default:
		return geom.RectSpec{}, errors.New("one of --rect or --corners is required")
	}
}

func parsePoint(name string, vals []float64) (geom.Vec, error) {
	if len(vals) != 2 {
		return geom.Vec{}, fmt.Errorf("--%v needs 2 values, got %v", name, len(vals))
	}
	return geom.V(vals[0], vals[1]), nil
}

func parseAnchor(name string) (anchor.Anchor, error) {
	if name == "" {
		return 0, errors.New("--anchor is required")
	}
	return anchor.Parse(name)
}
