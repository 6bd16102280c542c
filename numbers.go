package parsica

import "strconv"

// Number parses a (possibly negative) decimal number with an optional
// fractional part into a float64. The integral part is mandatory; the
// fractional part, introduced by '.', is optional.
func Number() Parser[float64] {
	digits := TakeWhile1("digits", IsDigit)
	sign := OptionalString(Token("-"))
	fraction := OptionalString(AppendString(Token("."), digits))

	parts := AssembleStrings(sign, digits, fraction)

	return Bind(parts, func(s string) Parser[float64] {
		return func(in Input) ParseResult[float64] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Fail[float64]("number", in)
			}
			return Succeed(v, in)
		}
	})
}

// Integer parses a (possibly negative) run of decimal digits into an
// int64.
func Integer() Parser[int64] {
	digits := TakeWhile1("digits", IsDigit)
	sign := OptionalString(Token("-"))
	parts := AppendString(sign, digits)

	return Bind(parts, func(s string) Parser[int64] {
		return func(in Input) ParseResult[int64] {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return Fail[int64]("integer", in)
			}
			return Succeed(v, in)
		}
	})
}
