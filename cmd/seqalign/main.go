// Command seqalign aligns two short sequences and lets the user redirect
// the optimal alignment through chosen matrix cells.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/seqalign/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(cli.ExitCodeOf(err)))
	}
}
