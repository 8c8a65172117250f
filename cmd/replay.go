package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"deedles.dev/xrect/anchor"
	"deedles.dev/xrect/geom"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// script is a recorded sequence of drags. Each step drags one anchor
// of the rectangle left by the previous step along a path of pointer
// positions.
//
//	corners: [-5, 3.5, 5, -3.5]
//	steps:
//	  - anchor: right
//	    path: [[8, 0], [-6, 0]]
type script struct {
	Rect    *rect     `yaml:"rect"`
	Corners []float64 `yaml:"corners"`
	Steps   []step    `yaml:"steps"`
}

type step struct {
	Anchor string  `yaml:"anchor"`
	Path   []point `yaml:"path"`
}

type replayFrame struct {
	Step   int    `json:"step" yaml:"step"`
	Anchor string `json:"anchor" yaml:"anchor"`
	To     point  `json:"to" yaml:"to"`
	Rect   rect   `json:"rect" yaml:"rect"`
}

func (s script) start() (geom.RectSpec, error) {
	switch {
	case s.Rect != nil && s.Corners != nil:
		return geom.RectSpec{}, errors.New("rect and corners are mutually exclusive")
	case s.Rect != nil:
		return s.Rect.RectSpec(), nil
	case len(s.Corners) == 4:
		return geom.FromCorners(s.Corners[0], s.Corners[1], s.Corners[2], s.Corners[3]), nil
	case s.Corners != nil:
		return geom.RectSpec{}, fmt.Errorf("corners needs 4 values, got %v", len(s.Corners))
	default:
		return geom.RectSpec{}, errors.New("script has no starting rectangle")
	}
}

func readScript(r io.Reader) (script, error) {
	var s script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&s)
	if err != nil {
		return script{}, fmt.Errorf("decode script: %w", err)
	}
	return s, nil
}

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a YAML drag script and print every intermediate rectangle",
		Long:  "replay reads a drag script from FILE, or from standard input if FILE is -, and prints the rectangle after every pointer position.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer file.Close()
				in = file
			}

			s, err := readScript(in)
			if err != nil {
				return err
			}

			frames, err := a.replay(s)
			if err != nil {
				return err
			}

			lines := make([]string, 0, len(frames))
			for _, f := range frames {
				lines = append(lines, fmt.Sprintf("%v %v %v -> %v", f.Step, f.Anchor, f.To.Vec(), f.Rect.RectSpec()))
			}
			return a.write(cmd.OutOrStdout(), strings.Join(lines, "\n"), frames)
		},
	}
}

func (a *app) replay(s script) ([]replayFrame, error) {
	cur, err := s.start()
	if err != nil {
		return nil, err
	}

	var frames []replayFrame
	for i, st := range s.Steps {
		an, err := anchor.Parse(st.Anchor)
		if err != nil {
			return nil, fmt.Errorf("step %v: %w", i, err)
		}
		if len(st.Path) == 0 {
			return nil, fmt.Errorf("step %v: empty path", i)
		}

		drag := anchor.NewDrag(cur, an)
		for _, p := range st.Path {
			r := drag.Update(p.Vec())
			if !r.IsFinite() {
				return nil, fmt.Errorf("step %v: drag %v to %v: %w", i, an, p.Vec(), ErrNonFinite)
			}
			frames = append(frames, replayFrame{
				Step:   i,
				Anchor: drag.Anchor().String(),
				To:     p,
				Rect:   rectOf(r),
			})
		}

		a.logger.Debug("replayed step",
			zap.Int("step", i),
			zap.Stringer("anchor", an),
			zap.Stringer("start", drag.Start()),
			zap.Stringer("end", drag.Rect()),
			zap.Int("points", len(st.Path)),
		)
		cur = drag.Rect()
	}

	return frames, nil
}
