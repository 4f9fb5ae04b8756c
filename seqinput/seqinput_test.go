package seqinput_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/seqinput"
)

// TestParse covers header stripping, line joining and normalisation.
func TestParse(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"Plain", "GATTACA", "GATTACA"},
		{"FastaHeader", ">seq1 human\nGATT\nACA", "GATTACA"},
		{"CRLF", ">x\r\nGA\r\nTT", "GATT"},
		{"OldMac", "GA\rTT", "GATT"},
		{"HeaderOnly", ">only a header", ""},
		{"HeaderNotFirst", "GA\n>TT", "GA>TT"},
		{"Composed", "e\u0301", "\u00e9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, seqinput.Parse(tc.raw))
		})
	}
}

// TestValidate checks the empty and length limits.
func TestValidate(t *testing.T) {
	assert.ErrorIs(t, seqinput.Validate("", 0), seqinput.ErrEmptyInput)
	assert.NoError(t, seqinput.Validate(strings.Repeat("A", 30), 0))

	err := seqinput.Validate(strings.Repeat("A", 31), 0)
	assert.ErrorIs(t, err, seqinput.ErrTooLong)
	assert.Contains(t, err.Error(), "this is 31")

	assert.ErrorIs(t, seqinput.Validate("ACGT", 3), seqinput.ErrTooLong)
	assert.NoError(t, seqinput.Validate("ααα", 3), "limit counts symbols, not bytes")
}

// TestRead parses then validates.
func TestRead(t *testing.T) {
	seq, err := seqinput.Read(">h\nAC\nGT\n", 0)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", seq)

	_, err = seqinput.Read(">h\n", 0)
	assert.ErrorIs(t, err, seqinput.ErrEmptyInput)
}
