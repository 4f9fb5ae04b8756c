package session

import "errors"

var (
	// ErrNotEditing indicates an editing operation on an Idle session.
	ErrNotEditing = errors.New("session: no edit in progress")

	// ErrAlreadyEditing indicates Begin on a session that is already Editing.
	ErrAlreadyEditing = errors.New("session: edit already in progress")

	// ErrIllegalMove indicates a chosen cell that is not one step up, left or
	// diagonally up-left of the previous cell, or that leaves the body region.
	ErrIllegalMove = errors.New("session: cell is not a legal next step")
)
