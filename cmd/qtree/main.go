package main

import (
	"os"

	"github.com/natalyag236/quadtree/cmd/qtree/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
