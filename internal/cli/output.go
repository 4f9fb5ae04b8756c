package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/alignment"
	"github.com/katalvlaran/seqalign/session"
)

// ExitCode is the process status a failed command exits with.
type ExitCode int

const (
	ExitOK       ExitCode = 0 // command succeeded
	ExitEngine   ExitCode = 1 // matrix or traceback failed on accepted input
	ExitUsage    ExitCode = 2 // bad sequence, flag or config file
	ExitRejected ExitCode = 3 // redirect cell not on the path or not a legal step
)

// String names the exit code for diagnostics.
func (c ExitCode) String() string {
	switch c {
	case ExitOK:
		return "ok"
	case ExitEngine:
		return "engine"
	case ExitUsage:
		return "usage"
	case ExitRejected:
		return "rejected"
	default:
		return fmt.Sprintf("ExitCode(%d)", int(c))
	}
}

// CommandError reports which step of a command failed and how the process
// should exit. Err may be nil when Op alone describes the failure.
type CommandError struct {
	Code ExitCode
	Op   string
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error { return e.Err }

// usageError marks err as caused by the caller's input.
func usageError(op string, err error) *CommandError {
	return &CommandError{Code: ExitUsage, Op: op, Err: err}
}

// engineError marks err as an engine failure on accepted input.
func engineError(op string, err error) *CommandError {
	return &CommandError{Code: ExitEngine, Op: op, Err: err}
}

// editError classifies a session failure: edits the session refused exit
// with ExitRejected, anything else is an engine failure.
func editError(op string, err error) *CommandError {
	switch {
	case errors.Is(err, session.ErrIllegalMove),
		errors.Is(err, session.ErrNotEditing),
		errors.Is(err, session.ErrAlreadyEditing),
		errors.Is(err, alignment.ErrCoordinateNotFound):
		return &CommandError{Code: ExitRejected, Op: op, Err: err}
	}
	return engineError(op, err)
}

// ExitCodeOf returns the exit status for err: ExitOK for nil, the carried
// code for a CommandError, ExitEngine for anything else (cobra flag and
// argument errors included).
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitOK
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitEngine
}

// Response is the envelope for json and yaml output.
type Response struct {
	Status string `json:"status" yaml:"status"`
	Data   any    `json:"data,omitempty" yaml:"data,omitempty"`
}

// texter is implemented by results with a human-readable form.
type texter interface {
	Text() string
}

// OutputFormatter writes command results in the configured format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Success writes data as text, json or yaml.
func (f *OutputFormatter) Success(data any) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(Response{Status: "ok", Data: data})
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(Response{Status: "ok", Data: data}); err != nil {
			return err
		}
		return enc.Close()
	}

	if t, ok := data.(texter); ok {
		_, err := fmt.Fprintln(f.Writer, t.Text())
		return err
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}
