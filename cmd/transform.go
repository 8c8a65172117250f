package cmd

import (
	"fmt"

	"deedles.dev/xrect/anchor"
	"deedles.dev/xrect/geom"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type transformResult struct {
	Rect   rect   `json:"rect" yaml:"rect"`
	Anchor string `json:"anchor" yaml:"anchor"`
	Flip   bool   `json:"flip" yaml:"flip"`
}

func newTransformCmd(a *app) *cobra.Command {
	var (
		rf   rectFlags
		name string
		to   []float64
	)

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Drag an anchor of a rectangle to a new position",
		Long:  "transform drags the given anchor to the target position and prints the resulting rectangle. The anchor opposite of the dragged one stays fixed. The anchor reported is the one that ends up under the target, which differs from the dragged one if the rectangle flipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.rect()
			if err != nil {
				return err
			}
			an, err := parseAnchor(name)
			if err != nil {
				return err
			}
			p, err := parsePoint("to", to)
			if err != nil {
				return err
			}

			res, err := a.transform(r, an, p)
			if err != nil {
				return err
			}

			text := res.Rect.RectSpec().String()
			if res.Flip {
				text += " (flipped to " + res.Anchor + ")"
			}
			return a.write(cmd.OutOrStdout(), text, res)
		},
	}

	rf.register(cmd.Flags())
	cmd.Flags().StringVarP(&name, "anchor", "a", "", "anchor to drag")
	cmd.Flags().Float64SliceVar(&to, "to", nil, "target position: x,y")

	return cmd
}

func (a *app) transform(r geom.RectSpec, an anchor.Anchor, to geom.Vec) (transformResult, error) {
	r = r.Canon()
	got := anchor.TransformAnchor(r, an, to)
	if !got.IsFinite() {
		a.logger.Error("non-finite transform", zap.Stringer("rect", r), zap.Stringer("anchor", an), zap.Stringer("to", to))
		return transformResult{}, fmt.Errorf("transform %v of %v: %w", an, r, ErrNonFinite)
	}

	landed, _ := anchor.FromVec(anchor.Flipped(r, an.Vec(), to))
	a.logger.Debug("transform",
		zap.Stringer("rect", r),
		zap.Stringer("anchor", an),
		zap.Stringer("to", to),
		zap.Stringer("result", got),
		zap.Stringer("landed", landed),
	)

	return transformResult{
		Rect:   rectOf(got),
		Anchor: landed.String(),
		Flip:   landed != an,
	}, nil
}
