// piececube - cube model, scrambler and solver front end for the terminal.
package main

import (
	"github.com/SeamusWaldron/piececube/internal/cli"
)

func main() {
	cli.Execute()
}
