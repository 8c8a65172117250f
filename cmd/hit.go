package cmd

import (
	"deedles.dev/xrect/anchor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type hitResult struct {
	Hit    bool   `json:"hit" yaml:"hit"`
	Anchor string `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	Cursor string `json:"cursor,omitempty" yaml:"cursor,omitempty"`
}

func newHitCmd(a *app) *cobra.Command {
	var (
		rf     rectFlags
		at     []float64
		radius float64
	)

	cmd := &cobra.Command{
		Use:   "hit",
		Short: "Find the anchor of a rectangle under a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.rect()
			if err != nil {
				return err
			}
			p, err := parsePoint("at", at)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("radius") {
				radius = a.cfg.HitRadius
			}

			an, ok := anchor.Nearest(r, p, radius)
			a.logger.Debug("hit test",
				zap.Stringer("rect", r),
				zap.Stringer("at", p),
				zap.Float64("radius", radius),
				zap.Bool("hit", ok),
			)
			if !ok {
				return a.write(cmd.OutOrStdout(), "none", hitResult{})
			}

			return a.write(cmd.OutOrStdout(), an.String(), hitResult{
				Hit:    true,
				Anchor: an.String(),
				Cursor: an.Cursor(),
			})
		},
	}

	rf.register(cmd.Flags())
	cmd.Flags().Float64SliceVar(&at, "at", nil, "point to test: x,y")
	cmd.Flags().Float64Var(&radius, "radius", 0, "hit radius (default from config)")

	return cmd
}
