package cmd

import (
	"github.com/spf13/cobra"

	"github.com/natalyag236/quadtree/internal/logger"
	"github.com/natalyag236/quadtree/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tree over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.HTTPAddress
		if listenAddr != "" {
			addr = listenAddr
		}
		return server.New(cfg.NewTree(), logger.New("server")).ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "addr", "a", "", "listen address (default from config)")
}
