package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/natalyag236/quadtree"
	"github.com/natalyag236/quadtree/internal/logger"
)

var (
	benchRects   int
	benchQueries int
	benchSeed    int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time random inserts and finds over the configured region",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New("bench")
		rnd := rand.New(rand.NewSource(benchSeed))
		tree := cfg.NewTree()
		b := tree.Boundary()
		randomPoint := func() (float64, float64) {
			return b.X + rnd.Float64()*b.Width, b.Y + rnd.Float64()*b.Height
		}

		start := time.Now()
		for i := 0; i != benchRects; i++ {
			x, y := randomPoint()
			if err := tree.Insert(quadtree.Rectangle{X: x, Y: y, Width: b.Width / 1000, Height: b.Height / 1000}); err != nil {
				return err
			}
		}
		log.Info().Int("rectangles", benchRects).Dur("elapsed", time.Since(start)).Msg("inserted")

		found := 0
		start = time.Now()
		for i := 0; i != benchQueries; i++ {
			if _, ok := tree.Find(randomPoint()); ok {
				found++
			}
		}
		log.Info().Int("queries", benchQueries).Int("found", found).Dur("elapsed", time.Since(start)).Msg("queried")

		s := tree.Stats()
		log.Info().Int("nodes", s.Nodes).Int("leaves", s.Leaves).Int("depth", s.Depth).Int("overfull", s.Overfull).Msg("shape")
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchRects, "rects", "n", 100000, "rectangles to insert")
	benchCmd.Flags().IntVarP(&benchQueries, "queries", "q", 10000, "random finds to run")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "random seed")
}
