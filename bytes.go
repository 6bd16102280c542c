package parsica

// TakeWhile consumes code points while pred holds and returns them as a
// string. It succeeds even on zero matches — callers that require at
// least one match should use TakeWhile1 instead.
func TakeWhile(pred Predicate) Parser[string] {
	return func(in Input) ParseResult[string] {
		remaining := in
		for {
			r, size, ok := remaining.Head()
			if !ok || !pred(r) {
				break
			}
			remaining = remaining.Advance(size)
		}
		return Succeed(string(in[:len(in)-len(remaining)]), remaining)
	}
}

// TakeWhile1 is TakeWhile but fails if it cannot consume at least one
// matching code point.
func TakeWhile1(name string, pred Predicate) Parser[string] {
	return func(in Input) ParseResult[string] {
		res := TakeWhile(pred)(in)
		if len(res.Output()) == 0 {
			return Fail[string](name, in)
		}
		return res
	}
}

// TakeWhileOneOf consumes code points that are members of collection
// and returns them as a string. It fails if the very first code point
// is not in collection.
func TakeWhileOneOf(collection ...rune) Parser[string] {
	index := make(map[rune]struct{}, len(collection))
	for _, r := range collection {
		index[r] = struct{}{}
	}
	pred := func(r rune) bool {
		_, ok := index[r]
		return ok
	}
	return func(in Input) ParseResult[string] {
		res := TakeWhile(pred)(in)
		if len(res.Output()) == 0 {
			return Fail[string]("takeWhileOneOf", in)
		}
		return res
	}
}

// TakeWhileMN consumes between min and max (inclusive) code points
// satisfying pred, failing if fewer than min are available.
func TakeWhileMN(min, max int, pred Predicate) Parser[string] {
	if min < 0 || max < min {
		panicProgrammerError(ErrInvalidArgument, "TakeWhileMN requires 0 <= min <= max")
	}
	return func(in Input) ParseResult[string] {
		remaining := in
		count := 0
		for count < max {
			r, size, ok := remaining.Head()
			if !ok || !pred(r) {
				break
			}
			remaining = remaining.Advance(size)
			count++
		}
		if count < min {
			return Fail[string]("takeWhileMN", in)
		}
		return Succeed(string(in[:len(in)-len(remaining)]), remaining)
	}
}

// TakeUntil consumes code points until p would succeed at the current
// position, returning everything consumed as a string. p itself is not
// consumed. It fails if p never matches before the end of input.
func TakeUntil[O any](p Parser[O]) Parser[string] {
	return func(in Input) ParseResult[string] {
		remaining := in
		for {
			if p(remaining).IsSuccess() {
				return Succeed(string(in[:len(in)-len(remaining)]), remaining)
			}
			_, size, ok := remaining.Head()
			if !ok {
				return Fail[string]("takeUntil", in)
			}
			remaining = remaining.Advance(size)
		}
	}
}

// Whitespace parses zero or more spaces/tabs and discards none of them:
// its output is the matched run itself, the way gomme's own Whitespace
// behaves.
func Whitespace() Parser[string] {
	return TakeWhile(IsSpaceOrTab).Label("whitespace")
}

// Trim discards any leading and trailing code points matching pred
// around p's match.
func Trim[O any](p Parser[O], pred Predicate) Parser[O] {
	skip := TakeWhile(pred)
	return Between(skip, p, skip)
}
