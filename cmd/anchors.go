package cmd

import (
	"fmt"
	"strings"

	"deedles.dev/xrect/anchor"
	"github.com/spf13/cobra"
)

type anchorInfo struct {
	Name   string `json:"name" yaml:"name"`
	Dir    point  `json:"dir" yaml:"dir"`
	Corner bool   `json:"corner" yaml:"corner"`
	Edges  string `json:"edges" yaml:"edges"`
	Cursor string `json:"cursor" yaml:"cursor"`
}

func newAnchorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "List the eight anchors of a rectangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				infos []anchorInfo
				text  strings.Builder
			)
			for an := range anchor.All() {
				info := anchorInfo{
					Name:   an.String(),
					Dir:    pointOf(an.Vec()),
					Corner: an.IsCorner(),
					Edges:  an.Edges().String(),
					Cursor: an.Cursor(),
				}
				infos = append(infos, info)
				fmt.Fprintf(&text, "%-13v %-8v %-13v %v\n", info.Name, an.Vec(), info.Edges, info.Cursor)
			}

			return a.write(cmd.OutOrStdout(), strings.TrimSuffix(text.String(), "\n"), infos)
		},
	}
}
