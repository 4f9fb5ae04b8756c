package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/seqmatrix"
)

// AlignOptions holds flags for the align command.
type AlignOptions struct {
	*RootOptions
	ShowGrid bool
}

// AlignResult is the output of the align command.
type AlignResult struct {
	Sequence1 string     `json:"sequence1" yaml:"sequence1"`
	Sequence2 string     `json:"sequence2" yaml:"sequence2"`
	Grid      [][]string `json:"grid,omitempty" yaml:"grid,omitempty,flow"`
	Main      PathView   `json:"main" yaml:"main"`

	text string
}

// Text returns the grid (if requested) and the scored alignment.
func (r AlignResult) Text() string { return r.text }

// NewAlignCommand creates the align command.
func NewAlignCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AlignOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "align <sequence1> <sequence2>",
		Short: "Globally align two sequences",
		Long: `Fill the Needleman–Wunsch matrix of two sequences and print the
optimal alignment with its score.

Example:
  seqalign align GATTACA GCATGCU
  seqalign align --grid --format json AG A`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowGrid, "grid", false, "also print the score matrix")

	return cmd
}

func runAlign(opts *AlignOptions, args []string, cmd *cobra.Command) error {
	seq1, seq2, err := readPair(args, opts.Config.MaxLength)
	if err != nil {
		return err
	}
	gridOpts := opts.Config.Options()
	g, err := seqmatrix.NewGlobal(seq1, seq2, &gridOpts)
	if err != nil {
		return usageError("build matrix", err)
	}
	main, err := alignment.Traceback(g)
	if err != nil {
		return engineError("traceback", err)
	}
	opts.Logger.Debug("aligned", "seq1", seq1, "seq2", seq2, "rows", g.Rows(), "cols", g.Cols())

	res := AlignResult{Sequence1: seq1, Sequence2: seq2, Main: newPathView(main), text: main.ScoreString()}
	if opts.ShowGrid {
		res.Grid = gridStrings(g)
		res.text = gridText(res.Grid) + "\n\n" + res.text
	}

	return opts.formatter(cmd).Success(res)
}
