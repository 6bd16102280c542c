package parsica

// Predicate is a pure function from a single code point to a boolean.
// Char-class primitives are all Satisfy(somePredicate).Label(name).
type Predicate func(rune) bool

// IsDigit reports whether r is an ASCII decimal digit: 0-9.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsUpper reports whether r is an ASCII uppercase letter: A-Z.
func IsUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsLower reports whether r is an ASCII lowercase letter: a-z.
func IsLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsAlpha reports whether r is an ASCII letter: a-z, A-Z.
func IsAlpha(r rune) bool {
	return IsLower(r) || IsUpper(r)
}

// IsAlphaNum reports whether r is an ASCII letter or digit.
func IsAlphaNum(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}

// IsHexDigit reports whether r is a hexadecimal digit: 0-9, a-f, A-F.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctDigit reports whether r is an octal digit: 0-7.
func IsOctDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsBinDigit reports whether r is a binary digit: 0 or 1.
func IsBinDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsControl reports whether r is an ASCII control character.
func IsControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// IsPrintable reports whether r is an ASCII printable character,
// including the space character.
func IsPrintable(r rune) bool {
	return r >= 0x20 && r < 0x7f
}

// IsPunctuation reports whether r is one of the ASCII punctuation
// characters (printable, not alphanumeric, not space).
func IsPunctuation(r rune) bool {
	return IsPrintable(r) && r != ' ' && !IsAlphaNum(r)
}

// IsSpaceOrTab reports whether r is a plain space or a horizontal tab.
func IsSpaceOrTab(r rune) bool {
	return r == ' ' || r == '\t'
}

// IsEqual builds a predicate matching exactly the rune c.
func IsEqual(c rune) Predicate {
	return func(r rune) bool { return r == c }
}

// Or builds a predicate that holds whenever p or q holds.
func Or(p, q Predicate) Predicate {
	return func(r rune) bool { return p(r) || q(r) }
}

// And builds a predicate that holds only when both p and q hold.
func And(p, q Predicate) Predicate {
	return func(r rune) bool { return p(r) && q(r) }
}

// Not builds a predicate that holds whenever p does not.
func Not(p Predicate) Predicate {
	return func(r rune) bool { return !p(r) }
}

// DigitChar parses a single ASCII decimal digit.
func DigitChar() Parser[rune] { return Satisfy(IsDigit).Label("digit") }

// AlphaChar parses a single ASCII letter.
func AlphaChar() Parser[rune] { return Satisfy(IsAlpha).Label("alpha") }

// AlphaNumChar parses a single ASCII letter or digit.
func AlphaNumChar() Parser[rune] { return Satisfy(IsAlphaNum).Label("alphaNum") }

// UpperChar parses a single ASCII uppercase letter.
func UpperChar() Parser[rune] { return Satisfy(IsUpper).Label("upper") }

// LowerChar parses a single ASCII lowercase letter.
func LowerChar() Parser[rune] { return Satisfy(IsLower).Label("lower") }

// HexDigitChar parses a single hexadecimal digit.
func HexDigitChar() Parser[rune] { return Satisfy(IsHexDigit).Label("hexDigit") }

// OctDigitChar parses a single octal digit.
func OctDigitChar() Parser[rune] { return Satisfy(IsOctDigit).Label("octDigit") }

// BinDigitChar parses a single binary digit.
func BinDigitChar() Parser[rune] { return Satisfy(IsBinDigit).Label("binDigit") }

// ControlChar parses a single ASCII control character.
func ControlChar() Parser[rune] { return Satisfy(IsControl).Label("control") }

// PrintChar parses a single ASCII printable character.
func PrintChar() Parser[rune] { return Satisfy(IsPrintable).Label("printable") }

// PunctuationChar parses a single ASCII punctuation character.
func PunctuationChar() Parser[rune] { return Satisfy(IsPunctuation).Label("punctuation") }

// SpaceChar parses a single space character.
func SpaceChar() Parser[rune] { return Satisfy(IsEqual(' ')).Label("space") }

// TabChar parses a single tab character.
func TabChar() Parser[rune] { return Satisfy(IsEqual('\t')).Label("tab") }
