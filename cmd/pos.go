package cmd

import (
	"fmt"
	"strings"

	"deedles.dev/xrect/anchor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type anchorPos struct {
	Anchor string `json:"anchor" yaml:"anchor"`
	Pos    point  `json:"pos" yaml:"pos"`
}

func newPosCmd(a *app) *cobra.Command {
	var (
		rf   rectFlags
		name string
	)

	cmd := &cobra.Command{
		Use:   "pos",
		Short: "Print the position of one or all anchors of a rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.rect()
			if err != nil {
				return err
			}

			var list []anchorPos
			if name != "" {
				an, err := anchor.Parse(name)
				if err != nil {
					return err
				}
				list = append(list, anchorPos{Anchor: an.String(), Pos: pointOf(anchor.Pos(r, an.Vec()))})
			} else {
				for i, p := range anchor.Positions(r) {
					list = append(list, anchorPos{Anchor: anchor.Anchor(i).String(), Pos: pointOf(p)})
				}
			}

			a.logger.Debug("anchor positions", zap.Stringer("rect", r), zap.Int("count", len(list)))

			lines := make([]string, 0, len(list))
			for _, ap := range list {
				lines = append(lines, fmt.Sprintf("%v %v", ap.Anchor, ap.Pos.Vec()))
			}
			return a.write(cmd.OutOrStdout(), strings.Join(lines, "\n"), list)
		},
	}

	rf.register(cmd.Flags())
	cmd.Flags().StringVarP(&name, "anchor", "a", "", "anchor to print (default all)")

	return cmd
}
