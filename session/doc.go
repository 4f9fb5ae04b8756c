// Package session tracks one interactive alignment-editing session over a
// Needleman–Wunsch grid: the algorithmic "main" path and, while the user is
// redirecting part of it, the "active" path.
//
// State machine:
//
//	        Begin(origin, via)
//	  Idle ───────────────────▶ Editing ──┐ Extend(cell)
//	   ▲                         │    ▲   │
//	   └──── End() / Promote() ──┘    └───┘
//
//   - Begin truncates the main path at origin, appends via and continues
//     the traceback from there.
//   - Extend truncates the active path at the previously chosen cell,
//     appends the new cell and continues again. While the active path
//     still equals the main path, the main path is cut at the Begin origin.
//   - End discards the active path; Promote makes it the new main path.
//
// A rejected edit (cell not on the path, or not one legal step away) leaves
// the session exactly as it was.
//
// A Session is owned by a single caller and is not safe for concurrent use.
// The paths it hands out are immutable values and may be shared freely.
package session
