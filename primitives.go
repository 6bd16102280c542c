package parsica

import "unicode"

// Char parses a single exact rune.
func Char(c rune) Parser[rune] {
	return Satisfy(IsEqual(c)).Label("char(" + string(c) + ")")
}

// CharI parses a single rune case-insensitively, preserving the actual
// case found in the input as its output.
func CharI(c rune) Parser[rune] {
	lower, upper := unicode.ToLower(c), unicode.ToUpper(c)
	return Satisfy(Or(IsEqual(lower), IsEqual(upper))).Label("charI(" + string(c) + ")")
}

// Token parses the exact literal string s. It panics with an
// InvalidArgument ProgrammerError if s is empty — the literal-string
// primitive requires |s| >= 1 (named Token rather than String or Tag,
// the name gomme itself migrated to mid-rewrite).
func Token(s string) Parser[string] {
	if len(s) == 0 {
		panicProgrammerError(ErrInvalidArgument, "Token(\"\") is not allowed, literal must be non-empty")
	}
	return func(in Input) ParseResult[string] {
		if len(in) < len(s) || string(in[:len(s)]) != s {
			return Fail[string](s, in)
		}
		return Succeed(s, in.Advance(len(s)))
	}
}

// LF parses a line feed character.
func LF() Parser[rune] { return Satisfy(IsEqual('\n')).Label("LF") }

// CR parses a carriage return character.
func CR() Parser[rune] { return Satisfy(IsEqual('\r')).Label("CR") }

// CRLF parses the two-character sequence "\r\n".
func CRLF() Parser[string] { return Token("\r\n").Label("CRLF") }

// Newline parses a newline: either CRLF or a lone LF. CRLF is tried
// first so that a "\r\n" input is never split into a bare "\r" followed
// by something else.
func Newline() Parser[string] {
	lf := Map(LF(), func(r rune) string { return string(r) })
	return CRLF().Or(lf).Label("newline")
}
