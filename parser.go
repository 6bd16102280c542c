package parsica

// Parser is the common signature of every parser: a pure function from
// an Input to a ParseResult[O]. Parsers are immutable once built and
// referentially transparent modulo their input argument; running the
// same Parser twice on the same input always yields the same result.
type Parser[O any] func(Input) ParseResult[O]

// Run executes p against a complete input string.
func (p Parser[O]) Run(input string) ParseResult[O] {
	return p(NewInput(input))
}

// Label replaces the expected-message of any failure p produces with
// name. A success is passed through unchanged. Labels nest: only the
// outermost Label observed by the caller on failure wins, since an
// inner parser's own Label call already rewrote its own failures
// before the outer one gets a chance to run.
func (p Parser[O]) Label(name string) Parser[O] {
	return func(in Input) ParseResult[O] {
		res := p(in)
		if res.IsFail() {
			return FailWith[O](&ParseError{Expected: name, Got: res.Got()})
		}
		return res
	}
}

// Or runs p; on success it returns that result, on failure it runs
// other against the ORIGINAL input in, discarding anything p may have
// looked at. If both fail, the failure reports "<p's label> or <other's
// label>".
func (p Parser[O]) Or(other Parser[O]) Parser[O] {
	return func(in Input) ParseResult[O] {
		res := p(in)
		if res.IsSuccess() {
			return res
		}
		altRes := other(in)
		if altRes.IsSuccess() {
			return altRes
		}
		return Fail[O](res.Expected()+" or "+altRes.Expected(), in)
	}
}

// Satisfy succeeds with the next code point if pred holds for it, and
// fails otherwise (including at end of input).
func Satisfy(pred Predicate) Parser[rune] {
	return func(in Input) ParseResult[rune] {
		r, size, ok := in.Head()
		if !ok {
			return Fail[rune]("satisfy", in)
		}
		if !pred(r) {
			return Fail[rune]("satisfy", in)
		}
		return Succeed(r, in.Advance(size))
	}
}

// AnySingle parses any single code point, failing only at end of input.
func AnySingle() Parser[rune] {
	return Satisfy(func(rune) bool { return true }).Label("anySingle")
}

// EOF succeeds with no output iff the input is fully consumed.
func EOF() Parser[struct{}] {
	return func(in Input) ParseResult[struct{}] {
		if in.IsEmpty() {
			return Succeed(struct{}{}, in)
		}
		return Fail[struct{}]("EOF", in)
	}
}

// Pure always succeeds, consumes nothing, and returns v as its output.
func Pure[O any](v O) Parser[O] {
	return func(in Input) ParseResult[O] {
		return Succeed(v, in)
	}
}

// Failure always fails, consuming nothing. It is the left/right
// identity element of Or.
func Failure[O any]() Parser[O] {
	return func(in Input) ParseResult[O] {
		return Fail[O]("<failure>", in)
	}
}
