package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/seqmatrix"
)

// DotResult is the output of the dot command.
type DotResult struct {
	Sequence1 string   `json:"sequence1" yaml:"sequence1"`
	Sequence2 string   `json:"sequence2" yaml:"sequence2"`
	Matches   [][]bool `json:"matches" yaml:"matches,flow"`

	text string
}

// Text returns the dot matrix with '*' for matches.
func (r DotResult) Text() string { return r.text }

// NewDotCommand creates the dot command.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot <sequence1> <sequence2>",
		Short: "Print the dot matrix of two sequences",
		Long: `Compare every symbol of sequence 1 with every symbol of sequence 2.
Matching cells are marked '*', the others '.'.

Example:
  seqalign dot AT TA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(rootOpts, args, cmd)
		},
	}
}

func runDot(opts *RootOptions, args []string, cmd *cobra.Command) error {
	seq1, seq2, err := readPair(args, opts.Config.MaxLength)
	if err != nil {
		return err
	}
	g, err := seqmatrix.NewDotMatrix(seq1, seq2)
	if err != nil {
		return usageError("build matrix", err)
	}
	opts.Logger.Debug("dot matrix", "seq1", seq1, "seq2", seq2)

	return opts.formatter(cmd).Success(DotResult{
		Sequence1: seq1,
		Sequence2: seq2,
		Matches:   g.Matches(),
		text:      gridText(gridStrings(g)),
	})
}
