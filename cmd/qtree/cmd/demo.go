package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/natalyag236/quadtree"
	"github.com/natalyag236/quadtree/internal/logger"
	"github.com/natalyag236/quadtree/internal/render"
)

var demoRects = []quadtree.Rectangle{
	{X: -40, Y: -40, Width: 10, Height: 10},
	{X: 20, Y: 20, Width: 8, Height: 8},
	{X: -10, Y: 30, Width: 12, Height: 12},
	{X: 45, Y: 45, Width: 6, Height: 6},
	{X: 30, Y: -25, Width: 5, Height: 5},
	{X: -30, Y: -10, Width: 7, Height: 7},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Insert six rectangles, forcing a split, and print the tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New("demo")
		tree := cfg.NewTree()
		for _, r := range demoRects {
			if err := tree.Insert(r); err != nil {
				return fmt.Errorf("insert %v: %w", r, err)
			}
			log.Debug().Stringer("rect", r).Bool("leaf", tree.Root().IsLeaf()).Msg("inserted")
		}
		s := tree.Stats()
		log.Info().Int("rectangles", s.Rectangles).Int("nodes", s.Nodes).Int("depth", s.Depth).Msg("tree built")
		return render.Write(cmd.OutOrStdout(), tree.Dump())
	},
}
