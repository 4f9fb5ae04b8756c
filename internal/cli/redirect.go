package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/seqmatrix"
	"github.com/katalvlaran/seqalign/session"
)

// RedirectOptions holds flags for the redirect command.
type RedirectOptions struct {
	*RootOptions
	From    string
	Via     []string
	Promote bool
}

// RedirectResult is the output of the redirect command.
type RedirectResult struct {
	SessionID   string   `json:"session_id" yaml:"session_id"`
	Main        PathView `json:"main" yaml:"main"`
	Active      PathView `json:"active" yaml:"active"`
	EqualToMain bool     `json:"equal_to_main" yaml:"equal_to_main"`
	LastChosen  [2]int   `json:"last_chosen" yaml:"last_chosen,flow"`
	Candidates  [][2]int `json:"candidates" yaml:"candidates,flow"`

	text string
}

// Text returns both alignments, the equality flag and the candidates.
func (r RedirectResult) Text() string { return r.text }

// NewRedirectCommand creates the redirect command.
func NewRedirectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RedirectOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "redirect <sequence1> <sequence2>",
		Short: "Redirect part of the optimal alignment through chosen cells",
		Long: `Truncate the optimal alignment path at --from, step through each --via
cell in turn and let the traceback complete the rest.

Each --via cell must be one step up, left or diagonally up-left of the cell
before it. Rows and columns are matrix indices: the origin is 1,1 and the
last cell is (len(sequence2)+1, len(sequence1)+1).

Example:
  seqalign redirect GATTACA GCATGCU --from 5,5 --via 4,5 --via 3,5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRedirect(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "path cell to redirect from, as row,col (required)")
	cmd.Flags().StringArrayVar(&opts.Via, "via", nil, "next cell to pass through, as row,col (repeatable, required)")
	cmd.Flags().BoolVar(&opts.Promote, "promote", false, "report the redirected path as the new main path")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("via")

	return cmd
}

func runRedirect(opts *RedirectOptions, args []string, cmd *cobra.Command) error {
	from, err := parseCoord(opts.From)
	if err != nil {
		return usageError("--from", err)
	}
	vias := make([]alignment.Coord, len(opts.Via))
	for i, v := range opts.Via {
		if vias[i], err = parseCoord(v); err != nil {
			return usageError("--via", err)
		}
	}

	seq1, seq2, err := readPair(args, opts.Config.MaxLength)
	if err != nil {
		return err
	}
	gridOpts := opts.Config.Options()
	g, err := seqmatrix.NewGlobal(seq1, seq2, &gridOpts)
	if err != nil {
		return usageError("build matrix", err)
	}
	s, err := session.New(g, &session.Options{Logger: opts.Logger})
	if err != nil {
		return engineError("start session", err)
	}

	if _, err = s.Begin(from, vias[0]); err != nil {
		return editError(fmt.Sprintf("redirect %v via %v", from, vias[0]), err)
	}
	for _, v := range vias[1:] {
		if _, err = s.Extend(v); err != nil {
			return editError(fmt.Sprintf("extend via %v", v), err)
		}
	}

	main, active := s.Main(), s.Active()
	last, _ := s.LastChosen()
	candidates := s.Candidates(last)
	equal := s.ActiveIsMain()
	if opts.Promote {
		if err = s.Promote(); err != nil {
			return editError("promote", err)
		}
	} else {
		s.End()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "main:\n%s\n", main.ScoreString())
	fmt.Fprintf(&b, "active:\n%s\n", active.ScoreString())
	fmt.Fprintf(&b, "equal to main: %t\n", equal)
	fmt.Fprintf(&b, "candidates at %v: %s", last, coordList(candidates))
	if opts.Promote {
		b.WriteString("\npromoted: active is the new main path")
	}

	return opts.formatter(cmd).Success(RedirectResult{
		SessionID:   s.ID().String(),
		Main:        newPathView(main),
		Active:      newPathView(active),
		EqualToMain: equal,
		LastChosen:  [2]int{last.Row, last.Col},
		Candidates:  coordPairs(candidates),
		text:        b.String(),
	})
}
