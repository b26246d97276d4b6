// Command chromasort solves colour-sorting puzzles, including puzzles with
// hidden items: it enumerates the feasible completions, solves each, and
// reports the moves that are safe under all of them.
package main

import (
	"os"

	"github.com/katalvlaran/chromasort/cli"
)

func main() {
	os.Exit(cli.NewApp().Run(os.Args[1:]))
}
