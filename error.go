package parsica

import "fmt"

// ParseError carries the diagnostics of a failed parse attempt: the
// expected label in scope at the point of failure, and a short
// description of what was actually found.
//
// ParseError is ordinary data, never a panic: it flows through
// ParseResult.Fail and is the thing Or, Many, SepBy and friends inspect
// to decide whether to backtrack.
type ParseError struct {
	Expected string
	Got      string
}

// NewParseError builds a ParseError, deriving Got from the input ahead
// (EOF, or a short rune excerpt).
func NewParseError(expected string, remaining Input) *ParseError {
	return &ParseError{Expected: expected, Got: describeInput(remaining)}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

func describeInput(in Input) string {
	if in.IsEmpty() {
		return "EOF"
	}
	r, size, _ := in.Head()
	if size == len(in) {
		return fmt.Sprintf("%q", string(r))
	}
	return fmt.Sprintf("%q...", string(r))
}

// ProgrammerErrorKind enumerates misuse conditions treated as
// programmer errors: they indicate the caller built an invalid parser,
// not that some input failed to parse, so they are raised immediately
// rather than folded into a ParseResult.
type ProgrammerErrorKind string

const (
	ErrInvalidArgument    ProgrammerErrorKind = "InvalidArgument"
	ErrWrongVariant       ProgrammerErrorKind = "WrongVariant"
	ErrIncompatibleAppend ProgrammerErrorKind = "IncompatibleAppend"
	ErrDoubleBind         ProgrammerErrorKind = "DoubleBind"
)

// ProgrammerError is panicked (never returned) on construction or
// accessor misuse: calling Output()/Remainder() on a Fail, Token("") or
// Assemble() with no parsers, Repeat with n < 0, or a second Recurse
// on an already-bound recursion cell. Expected()/Got() on a Succeed do
// not panic; they return "".
type ProgrammerError struct {
	Kind ProgrammerErrorKind
	Msg  string
}

func (e *ProgrammerError) Error() string {
	return fmt.Sprintf("parsica: %s: %s", e.Kind, e.Msg)
}

func panicProgrammerError(kind ProgrammerErrorKind, msg string) {
	panic(&ProgrammerError{Kind: kind, Msg: msg})
}
