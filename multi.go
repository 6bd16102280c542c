package parsica

// Many applies p zero or more times and collects the outputs into a
// slice. It always succeeds and never grows the call stack: the loop is
// iterative, as gomme's own Many0 is, so input length bounds memory
// rather than stack depth.
//
// If p can succeed while consuming no input, Many detects the
// non-progressing iteration and stops rather than looping forever.
func Many[O any](p Parser[O]) Parser[[]O] {
	return func(in Input) ParseResult[[]O] {
		outputs := []O{}
		remaining := in
		for {
			res := p(remaining)
			if res.IsFail() {
				return Succeed(outputs, remaining)
			}
			if len(res.Remainder()) == len(remaining) {
				return Succeed(outputs, remaining)
			}
			outputs = append(outputs, res.Output())
			remaining = res.Remainder()
		}
	}
}

// Some applies p one or more times and collects the outputs into a
// slice. It fails if p does not match at least once, or if p's first
// match consumes no input; a later match that consumes no input ends
// the loop with the outputs collected so far (to avoid looping forever).
func Some[O any](p Parser[O]) Parser[[]O] {
	return func(in Input) ParseResult[[]O] {
		first := p(in)
		if first.IsFail() {
			return FailWith[[]O](first.Error())
		}
		if len(first.Remainder()) == len(in) {
			return Fail[[]O]("some", in)
		}
		outputs := []O{first.Output()}
		remaining := first.Remainder()
		for {
			res := p(remaining)
			if res.IsFail() {
				return Succeed(outputs, remaining)
			}
			if len(res.Remainder()) == len(remaining) {
				return Succeed(outputs, remaining)
			}
			outputs = append(outputs, res.Output())
			remaining = res.Remainder()
		}
	}
}

// AtLeastOneString applies p one or more times and concatenates the
// string outputs, rather than collecting them into a slice the way Some
// does — the closed-set string variant of atLeastOne.
func AtLeastOneString(p Parser[string]) Parser[string] {
	return Map(Some(p), func(parts []string) string {
		out := ""
		for _, s := range parts {
			out += s
		}
		return out
	})
}

// AtLeastOneSlice applies p one or more times and flattens the slice
// outputs into a single slice.
func AtLeastOneSlice[T any](p Parser[[]T]) Parser[[]T] {
	return Map(Some(p), func(parts [][]T) []T {
		out := []T{}
		for _, part := range parts {
			out = append(out, part...)
		}
		return out
	})
}

// RepeatList runs p exactly n times and returns the n outputs as a
// slice. n == 0 succeeds immediately with an empty slice; n < 0 panics
// with an InvalidArgument ProgrammerError.
func RepeatList[O any](n int, p Parser[O]) Parser[[]O] {
	if n < 0 {
		panicProgrammerError(ErrInvalidArgument, "RepeatList requires n >= 0")
	}
	return func(in Input) ParseResult[[]O] {
		outputs := make([]O, 0, n)
		remaining := in
		for i := 0; i < n; i++ {
			res := p(remaining)
			if res.IsFail() {
				return FailWith[[]O](res.Error())
			}
			outputs = append(outputs, res.Output())
			remaining = res.Remainder()
		}
		return Succeed(outputs, remaining)
	}
}

// RepeatString runs p exactly n times and concatenates the string
// outputs. n == 0 is defined as Pure("").
func RepeatString(n int, p Parser[string]) Parser[string] {
	return Map(RepeatList(n, p), func(parts []string) string {
		out := ""
		for _, s := range parts {
			out += s
		}
		return out
	})
}

// RepeatSlice runs p exactly n times and concatenates the slice
// outputs. n == 0 succeeds immediately with an empty (non-nil) slice.
func RepeatSlice[T any](n int, p Parser[[]T]) Parser[[]T] {
	return Map(RepeatList(n, p), func(parts [][]T) []T {
		out := []T{}
		for _, part := range parts {
			out = append(out, part...)
		}
		return out
	})
}

// Count is Repeat's old gomme name, kept as a thin alias over
// RepeatList since downstream grammars (see examples/hexcolor) are
// usually after a fixed-length list of sub-matches, not a monoidal
// concatenation.
func Count[O any](p Parser[O], count int) Parser[[]O] {
	return RepeatList(count, p)
}

// SepBy1 parses one or more occurrences of p separated by sep, and
// returns the element outputs as a slice (separator outputs are
// discarded). It fails unless at least one p matches at the start of
// input.
func SepBy1[O, S any](sep Parser[S], p Parser[O]) Parser[[]O] {
	return func(in Input) ParseResult[[]O] {
		first := p(in)
		if first.IsFail() {
			return FailWith[[]O](first.Error())
		}
		outputs := []O{first.Output()}
		remaining := first.Remainder()
		for {
			sepRes := sep(remaining)
			if sepRes.IsFail() {
				return Succeed(outputs, remaining)
			}
			elemRes := p(sepRes.Remainder())
			if elemRes.IsFail() {
				return Succeed(outputs, remaining)
			}
			outputs = append(outputs, elemRes.Output())
			remaining = elemRes.Remainder()
		}
	}
}

// SepBy parses zero or more occurrences of p separated by sep. It
// always succeeds.
func SepBy[O, S any](sep Parser[S], p Parser[O]) Parser[[]O] {
	return Optional(SepBy1(sep, p), []O{})
}
