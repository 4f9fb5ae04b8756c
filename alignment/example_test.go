package alignment_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/seqmatrix"
)

// ExampleTraceback aligns AC against AC along the pure diagonal.
func ExampleTraceback() {
	g, err := seqmatrix.NewGlobal("AC", "AC", nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p, err := alignment.Traceback(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p.Cells())
	fmt.Println(p.ScoreString())
	// Output:
	// [(3,3) (2,2) (1,1)]
	// AC
	// ||
	// AC  Score: 2
}

// ExampleContinue redirects the AG × A alignment through the boundary row.
func ExampleContinue() {
	g, _ := seqmatrix.NewGlobal("AG", "A", nil)
	main, _ := alignment.Traceback(g)

	terminal := main.First()
	fmt.Println("candidates:", main.Candidates(terminal))

	prefix, _ := main.Truncate(terminal)
	active, err := alignment.Continue(prefix.Extend(alignment.Coord{Row: 1, Col: 3}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(active.Cells())
	fmt.Println("score:", active.Score(), "equal to main:", active.Equal(main))
	// Output:
	// candidates: [(1,3) (1,2)]
	// [(2,3) (1,3) (1,2) (1,1)]
	// score: -3 equal to main: false
}
