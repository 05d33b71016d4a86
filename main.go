package main

import (
	"github.com/numgrid/polychaos/cmd"
)

func main() {
	cmd.Execute()
}
