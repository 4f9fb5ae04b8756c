package seqmatrix

import "strconv"

// Scoring weights used by the Needleman–Wunsch fill and by path scoring.
const (
	// Match is added when two aligned symbols are equal.
	Match = 1
	// Mismatch is added when two aligned symbols differ.
	Mismatch = -1
	// Indel is added for every gap (insertion or deletion).
	Indel = -1
)

// Kind tags what a grid cell holds.
type Kind uint8

const (
	// KindEmpty is an unfilled body cell or the blank corner of the header.
	KindEmpty Kind = iota
	// KindHeader holds a symbol of one of the two sequences.
	KindHeader
	// KindBoundary holds the cumulative indel initialisation of a padded grid.
	KindBoundary
	// KindScore holds a Needleman–Wunsch alignment score.
	KindScore
	// KindMatch holds a dot-matrix match flag.
	KindMatch
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindHeader:
		return "header"
	case KindBoundary:
		return "boundary"
	case KindScore:
		return "score"
	case KindMatch:
		return "match"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is a single grid slot. Only the field matching Kind is meaningful.
type Cell struct {
	Kind   Kind
	Symbol rune // KindHeader
	Value  int  // KindBoundary, KindScore
	Match  bool // KindMatch
}

// HeaderCell returns a header cell holding symbol r.
func HeaderCell(r rune) Cell { return Cell{Kind: KindHeader, Symbol: r} }

// BoundaryCell returns a boundary cell holding v.
func BoundaryCell(v int) Cell { return Cell{Kind: KindBoundary, Value: v} }

// ScoreCell returns a body cell holding alignment score v.
func ScoreCell(v int) Cell { return Cell{Kind: KindScore, Value: v} }

// MatchCell returns a body cell holding the dot-matrix flag m.
func MatchCell(m bool) Cell { return Cell{Kind: KindMatch, Match: m} }

// IsNumeric reports whether the cell carries an integer value.
func (c Cell) IsNumeric() bool { return c.Kind == KindBoundary || c.Kind == KindScore }

// String renders the cell for plain-text display: the symbol for headers,
// the integer for boundary and score cells, "*" or "." for match flags and
// the empty string otherwise.
func (c Cell) String() string {
	switch c.Kind {
	case KindHeader:
		return string(c.Symbol)
	case KindBoundary, KindScore:
		return strconv.Itoa(c.Value)
	case KindMatch:
		if c.Match {
			return "*"
		}
		return "."
	default:
		return ""
	}
}

// Mode records which fill pass, if any, has been applied to a grid.
type Mode int

const (
	// ModeNone means the body is still zero-initialised.
	ModeNone Mode = iota
	// ModeDotMatrix means the body holds match flags.
	ModeDotMatrix
	// ModeGlobal means the grid is padded and holds Needleman–Wunsch scores.
	ModeGlobal
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeDotMatrix:
		return "dot-matrix"
	case ModeGlobal:
		return "global"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Scoring holds the weights of the global alignment recurrence.
type Scoring struct {
	Match    int
	Mismatch int
	Indel    int
}

// DefaultScoring returns the fixed MATCH=+1, MISMATCH=-1, INDEL=-1 weights.
func DefaultScoring() Scoring {
	return Scoring{Match: Match, Mismatch: Mismatch, Indel: Indel}
}

// Substitution returns the weight for aligning symbol a against symbol b.
func (s Scoring) Substitution(a, b rune) int {
	if a == b {
		return s.Match
	}
	return s.Mismatch
}

// Options configures grid construction.
//
// Fields:
//   - Scoring — weights applied by FillNeedlemanWunsch and stored on the grid
//     so that paths derived from it score themselves consistently.
type Options struct {
	Scoring Scoring
}

// DefaultOptions returns Options with DefaultScoring.
func DefaultOptions() Options {
	return Options{Scoring: DefaultScoring()}
}
