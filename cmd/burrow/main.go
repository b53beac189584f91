// Command burrow reads a burrow arrangement from a text file and prints
// the minimum total energy needed to sort it.
//
// Usage:
//
//	burrow [-unfold] <file>
//
// With -unfold, a two-row-deep arrangement is first expanded into the
// four-row-deep variant. Exit status is 1 for usage and parse errors and
// 2 when the arrangement is unsolvable.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/runfalk/burrow/grid"
	"github.com/runfalk/burrow/solve"
)

func main() {
	unfold := flag.Bool("unfold", false, "expand a two-row-deep grid into the four-row-deep variant")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: burrow [-unfold] <file>")
		os.Exit(1)
	}

	input, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "burrow:", err)
		os.Exit(1)
	}

	g, err := grid.ParseGrid(string(input))
	if err != nil {
		fmt.Fprintln(os.Stderr, "burrow:", err)
		os.Exit(1)
	}
	if *unfold {
		if g, err = g.Unfold(); err != nil {
			fmt.Fprintln(os.Stderr, "burrow:", err)
			os.Exit(1)
		}
	}

	cost, err := solve.MinEnergy(g)
	switch {
	case errors.Is(err, solve.ErrNoSolution):
		fmt.Println("no solution")
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "burrow:", err)
		os.Exit(1)
	default:
		fmt.Println(cost)
	}
}
