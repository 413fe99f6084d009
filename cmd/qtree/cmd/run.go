package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/natalyag236/quadtree/internal/logger"
	"github.com/natalyag236/quadtree/internal/script"
)

var keepGoing bool

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Execute a command script (stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}

		runner := script.NewRunner(cfg.NewTree(), logger.New("script"))
		runner.KeepGoing = keepGoing
		return runner.Run(in, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "log failing lines and continue")
}
