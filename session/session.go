package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/seqmatrix"
)

// State is the editing state of a Session.
type State int

const (
	// Idle shows the main path.
	Idle State = iota
	// Editing shows an active path derived from user-chosen cells.
	Editing
)

// String returns "idle" or "editing".
func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "idle"
}

// Options configures a Session.
//
// Fields:
//   - ID     — session identifier; uuid.Nil generates a random one.
//   - Logger — receives transition records; nil discards them.
type Options struct {
	ID     uuid.UUID
	Logger *slog.Logger
}

// Session holds the main and active paths of one grid.
type Session struct {
	id     uuid.UUID
	grid   *seqmatrix.Grid
	main   *alignment.Path
	active *alignment.Path
	origin alignment.Coord // cell the main path was left at by Begin
	last   alignment.Coord // most recently chosen cell while Editing
	state  State
	log    *slog.Logger
}

// New traces the main path of g and returns an Idle session.
func New(g *seqmatrix.Grid, opts *Options) (*Session, error) {
	main, err := alignment.Traceback(g)
	if err != nil {
		return nil, err
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{id: o.ID, grid: g, main: main, log: o.Logger.With("session", o.ID.String())}
	s.log.Debug("session created",
		"seq1", g.Sequence1(), "seq2", g.Sequence2(), "score", main.Score())

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the grid both paths walk.
func (s *Session) Grid() *seqmatrix.Grid { return s.grid }

// State returns the current editing state.
func (s *Session) State() State { return s.state }

// Main returns the main path.
func (s *Session) Main() *alignment.Path { return s.main }

// Active returns the active path, or nil while Idle.
func (s *Session) Active() *alignment.Path { return s.active }

// Displayed returns the active path while Editing, the main path otherwise.
func (s *Session) Displayed() *alignment.Path {
	if s.state == Editing {
		return s.active
	}
	return s.main
}

// LastChosen returns the most recently chosen cell. ok is false while Idle.
func (s *Session) LastChosen() (c alignment.Coord, ok bool) {
	return s.last, s.state == Editing
}

// ActiveIsMain reports whether the displayed path is exactly the main path.
func (s *Session) ActiveIsMain() bool { return s.Displayed().Equal(s.main) }

// Candidates returns the redirect targets at c on the displayed path.
func (s *Session) Candidates(c alignment.Coord) []alignment.Coord {
	return s.Displayed().Candidates(c)
}

// Begin moves Idle → Editing: the main path is truncated at origin, via is
// appended and the traceback continues from via.
func (s *Session) Begin(origin, via alignment.Coord) (*alignment.Path, error) {
	if s.state == Editing {
		return nil, ErrAlreadyEditing
	}
	active, err := s.redirect(s.main, origin, via)
	if err != nil {
		return nil, err
	}

	s.active, s.origin, s.last, s.state = active, origin, via, Editing
	s.log.Debug("edit started",
		"origin", origin.String(), "via", via.String(), "score", active.Score())

	return active, nil
}

// Extend keeps the session Editing: the active path is truncated at the
// previously chosen cell, cell is appended and the traceback continues.
// While the active path still equals the main path, the main path is
// truncated at the origin given to Begin instead.
func (s *Session) Extend(cell alignment.Coord) (*alignment.Path, error) {
	if s.state != Editing {
		return nil, ErrNotEditing
	}
	base, from := s.active, s.last
	if s.active.Equal(s.main) {
		base, from = s.main, s.origin
	}
	active, err := s.redirect(base, from, cell)
	if err != nil {
		return nil, err
	}

	s.active, s.last = active, cell
	s.log.Debug("edit extended",
		"via", cell.String(), "score", active.Score(), "equal_to_main", active.Equal(s.main))

	return active, nil
}

// End moves Editing → Idle and discards the active path. It reports whether
// an edit was in progress.
func (s *Session) End() bool {
	if s.state != Editing {
		return false
	}
	s.log.Debug("edit discarded", "score", s.active.Score())
	s.active, s.origin, s.last, s.state = nil, alignment.Coord{}, alignment.Coord{}, Idle

	return true
}

// Promote moves Editing → Idle keeping the active path as the new main path.
func (s *Session) Promote() error {
	if s.state != Editing {
		return ErrNotEditing
	}
	s.log.Debug("edit promoted", "score", s.active.Score())
	s.main, s.active, s.state = s.active, nil, Idle
	s.origin, s.last = alignment.Coord{}, alignment.Coord{}

	return nil
}

// redirect truncates base at from and continues through next. Rejected
// edits are logged and leave the session untouched.
func (s *Session) redirect(base *alignment.Path, from, next alignment.Coord) (*alignment.Path, error) {
	if !from.Steps(next) || next.Row < 1 || next.Col < 1 {
		err := fmt.Errorf("%v -> %v: %w", from, next, ErrIllegalMove)
		s.log.Warn("edit rejected", "error", err)
		return nil, err
	}
	prefix, err := base.Truncate(from)
	if err != nil {
		if errors.Is(err, alignment.ErrCoordinateNotFound) {
			s.log.Warn("edit aborted", "error", err)
		}
		return nil, err
	}

	return alignment.Continue(prefix.Extend(next))
}
