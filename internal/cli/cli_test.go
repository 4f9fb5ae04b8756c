package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/seqinput"
	"github.com/katalvlaran/seqalign/session"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "seqalign", cmd.Use)

	for _, name := range []string{"align", "dot", "redirect"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestAlign_Golden(t *testing.T) {
	g := newGolden(t)

	out, _, err := execute(t, "align", "GATTACA", "GCATGCU")
	require.NoError(t, err)
	g.Assert(t, "align_wikipedia", []byte(out))

	out, _, err = execute(t, "align", "--grid", "AG", "A")
	require.NoError(t, err)
	g.Assert(t, "align_grid", []byte(out))
}

func TestAlign_FastaInput(t *testing.T) {
	out, _, err := execute(t, "align", ">first\nA\nC", ">second\r\nAC")
	require.NoError(t, err)
	assert.Equal(t, "AC\n||\nAC  Score: 2\n", out)
}

func TestAlign_JSON(t *testing.T) {
	out, _, err := execute(t, "align", "--format", "json", "--grid", "AG", "A")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   AlignResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "AG", resp.Data.Sequence1)
	assert.Equal(t, "A-", resp.Data.Main.Seq2)
	assert.Equal(t, 0, resp.Data.Main.Score)
	assert.Equal(t, [][2]int{{2, 3}, {2, 2}, {1, 1}}, resp.Data.Main.Cells)
	assert.Equal(t, []string{"A", "-1", "1", "0"}, resp.Data.Grid[2])
}

func TestAlign_ConfigScoring(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqalign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  match: 3\nformat: yaml\n"), 0o644))

	out, _, err := execute(t, "align", "--config", path, "AC", "AC")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Main PathView `yaml:"main"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 6, resp.Data.Main.Score)
}

func TestAlign_InputErrors(t *testing.T) {
	_, _, err := execute(t, "align", "", "A")
	assert.ErrorIs(t, err, seqinput.ErrEmptyInput)
	assert.Equal(t, ExitUsage, ExitCodeOf(err))

	_, _, err = execute(t, "align", "A", "ACGTACGTACGTACGTACGTACGTACGTACG")
	assert.ErrorIs(t, err, seqinput.ErrTooLong)
	assert.Contains(t, err.Error(), "sequence 2")

	_, _, err = execute(t, "align", "--format", "xml", "A", "A")
	assert.Equal(t, ExitUsage, ExitCodeOf(err))
}

func TestDot_Golden(t *testing.T) {
	out, _, err := execute(t, "dot", "AT", "TA")
	require.NoError(t, err)
	newGolden(t).Assert(t, "dot_crossed", []byte(out))
}

func TestDot_JSON(t *testing.T) {
	out, _, err := execute(t, "dot", "--format", "json", "AT", "TA")
	require.NoError(t, err)

	var resp struct {
		Data DotResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, [][]bool{{false, true}, {true, false}}, resp.Data.Matches)
}

func TestRedirect_Golden(t *testing.T) {
	out, _, err := execute(t, "redirect", "GATTACA", "GCATGCU", "--from", "5,5", "--via", "4,5", "--via", "3,5")
	require.NoError(t, err)
	newGolden(t).Assert(t, "redirect_wikipedia", []byte(out))
}

func TestRedirect_JSON(t *testing.T) {
	out, stderr, err := execute(t, "redirect", "-v", "--format", "json", "AG", "A", "--from", "2,3", "--via", "2,2")
	require.NoError(t, err)

	var resp struct {
		Data RedirectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Data.EqualToMain, "via the actual successor reproduces main")
	assert.Equal(t, resp.Data.Main, resp.Data.Active)
	assert.Equal(t, [2]int{2, 2}, resp.Data.LastChosen)
	assert.Equal(t, [][2]int{{1, 2}, {2, 1}}, resp.Data.Candidates)
	assert.NotEmpty(t, resp.Data.SessionID)
	assert.Contains(t, stderr, "edit started", "verbose logs go to stderr")
	assert.Contains(t, stderr, "session="+resp.Data.SessionID)
}

func TestRedirect_Promote(t *testing.T) {
	out, _, err := execute(t, "redirect", "AG", "A", "--from", "2,3", "--via", "1,3", "--promote")
	require.NoError(t, err)
	assert.Contains(t, out, "promoted: active is the new main path")
	assert.Contains(t, out, "--A  Score: -3")
}

func TestRedirect_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
		code ExitCode
	}{
		{"NotOnPath", []string{"--from", "3,7", "--via", "2,7"}, alignment.ErrCoordinateNotFound, ExitRejected},
		{"IllegalMove", []string{"--from", "5,5", "--via", "3,3"}, session.ErrIllegalMove, ExitRejected},
		{"BadCoord", []string{"--from", "5", "--via", "4,5"}, nil, ExitUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"redirect", "GATTACA", "GCATGCU"}, tc.args...)
			_, _, err := execute(t, args...)
			require.Error(t, err)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
			assert.Equal(t, tc.code, ExitCodeOf(err))
		})
	}
}

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCodeOf(nil))
	assert.Equal(t, ExitEngine, ExitCodeOf(errors.New("unknown flag")))

	rejected := editError("extend via (3,3)", fmt.Errorf("wrapped: %w", session.ErrIllegalMove))
	assert.Equal(t, ExitRejected, ExitCodeOf(fmt.Errorf("run: %w", rejected)))
	assert.ErrorIs(t, rejected, session.ErrIllegalMove)
	assert.Equal(t, "extend via (3,3): wrapped: session: cell is not a legal next step", rejected.Error())

	assert.Equal(t, ExitRejected, editError("begin", alignment.ErrCoordinateNotFound).Code)
	assert.Equal(t, ExitEngine, editError("promote", errors.New("boom")).Code)
	assert.Equal(t, ExitUsage, usageError("--from", nil).Code)
	assert.Equal(t, "--from", usageError("--from", nil).Error())

	assert.Equal(t, "rejected", ExitRejected.String())
	assert.Equal(t, "ExitCode(9)", ExitCode(9).String())
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 4, 5")
	require.NoError(t, err)
	assert.Equal(t, alignment.Coord{Row: 4, Col: 5}, c)

	for _, bad := range []string{"", "4", "a,5", "4,b"} {
		_, err := parseCoord(bad)
		assert.Error(t, err, "parseCoord(%q)", bad)
	}
}
