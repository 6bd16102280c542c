package parsica

// Map transforms p's output on success with f. A Fail passes through
// unchanged. This is a free function rather than a method because Go
// disallows a method from introducing the new type parameter P.
func Map[O, P any](p Parser[O], f func(O) P) Parser[P] {
	return func(in Input) ParseResult[P] {
		return MapResult(p(in), f)
	}
}

// Bind is the monadic chain: on success it applies f to p's output and
// runs the resulting Parser[P] on the remainder; on failure it returns
// the original failure unchanged.
func Bind[O, P any](p Parser[O], f func(O) Parser[P]) Parser[P] {
	return func(in Input) ParseResult[P] {
		res := p(in)
		if res.IsFail() {
			return FailWith[P](res.Error())
		}
		return f(res.Output())(res.Remainder())
	}
}

// Sequence runs a then b on the remainder and keeps only b's output.
// Equivalent to `Bind(a, func(_ O) Parser[P] { return b })`.
func Sequence[O, P any](a Parser[O], b Parser[P]) Parser[P] {
	return Bind(a, func(O) Parser[P] { return b })
}

// KeepFirst runs a then b on the remainder and keeps only a's output.
func KeepFirst[O, P any](a Parser[O], b Parser[P]) Parser[O] {
	return Bind(a, func(out O) Parser[O] {
		return Sequence(b, Pure(out))
	})
}

// KeepSecond is Sequence, labelled for readable diagnostics.
func KeepSecond[O, P any](a Parser[O], b Parser[P]) Parser[P] {
	return Sequence(a, b).Label("keepSecond")
}

// Apply runs pf (a parser of a unary function), then runs pa on the
// remainder, then applies the parsed function to the parsed argument.
// Failure semantics match Sequence.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Bind(pf, func(f func(A) B) Parser[B] {
		return Map(pa, f)
	})
}

// ThenIgnore sequences other after p but keeps p's output — the same
// combinator as KeepFirst, with the argument order a `p.thenIgnore(other)`
// method call would imply.
func ThenIgnore[O, P any](p Parser[O], other Parser[P]) Parser[O] {
	return KeepFirst(p, other)
}

// NotFollowedBy succeeds with p's output iff, after consuming p, other
// would fail at the new remainder. It never consumes what other would
// have matched: on success it rewinds to right after p, and on
// rejection it rewinds all the way back to the start.
func NotFollowedBy[O, P any](p Parser[O], other Parser[P]) Parser[O] {
	return func(in Input) ParseResult[O] {
		res := p(in)
		if res.IsFail() {
			return res
		}
		if other(res.Remainder()).IsSuccess() {
			return Fail[O]("notFollowedBy", in)
		}
		return res
	}
}

// Optional applies p; on success it returns p's result, on failure it
// succeeds with empty as the output and consumes nothing. Rather than
// guessing a monoid identity for an arbitrary O, the caller supplies it
// explicitly.
func Optional[O any](p Parser[O], empty O) Parser[O] {
	return p.Or(Pure(empty))
}

// OptionalString is Optional specialised to the string monoid's
// identity, "".
func OptionalString(p Parser[string]) Parser[string] {
	return Optional(p, "")
}

// OptionalSlice is Optional specialised to the slice monoid's identity,
// an empty (non-nil) slice.
func OptionalSlice[T any](p Parser[[]T]) Parser[[]T] {
	return Optional(p, []T{})
}

// AppendString runs a then b and concatenates their string outputs.
func AppendString(a, b Parser[string]) Parser[string] {
	return Bind(a, func(left string) Parser[string] {
		return Map(b, func(right string) string { return left + right })
	})
}

// AppendSlice runs a then b and concatenates their slice outputs.
func AppendSlice[T any](a, b Parser[[]T]) Parser[[]T] {
	return Bind(a, func(left []T) Parser[[]T] {
		return Map(b, func(right []T) []T {
			out := make([]T, 0, len(left)+len(right))
			out = append(out, left...)
			out = append(out, right...)
			return out
		})
	})
}

// AssembleStrings left-folds AppendString over ps. It panics with an
// InvalidArgument ProgrammerError if ps is empty.
func AssembleStrings(ps ...Parser[string]) Parser[string] {
	if len(ps) == 0 {
		panicProgrammerError(ErrInvalidArgument, "AssembleStrings requires at least one parser")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = AppendString(acc, p)
	}
	return acc
}

// AssembleSlices left-folds AppendSlice over ps. It panics with an
// InvalidArgument ProgrammerError if ps is empty.
func AssembleSlices[T any](ps ...Parser[[]T]) Parser[[]T] {
	if len(ps) == 0 {
		panicProgrammerError(ErrInvalidArgument, "AssembleSlices requires at least one parser")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = AppendSlice(acc, p)
	}
	return acc
}

// Collect runs every parser in ps in order and gathers their outputs
// into a single slice, one entry per parser. Unlike AssembleSlices it
// does not require O itself to be a slice: each output is wrapped in a
// singleton slice before being concatenated, so Collect works for any
// output type.
func Collect[O any](ps ...Parser[O]) Parser[[]O] {
	wrapped := make([]Parser[[]O], len(ps))
	for i, p := range ps {
		wrapped[i] = Map(p, func(out O) []O { return []O{out} })
	}
	return func(in Input) ParseResult[[]O] {
		if len(wrapped) == 0 {
			return Succeed[[]O](nil, in)
		}
		return AssembleSlices(wrapped...)(in)
	}
}

// Between parses open, then m, then close, keeping only m's output.
func Between[OA, A, OB any](open Parser[OA], m Parser[A], close Parser[OB]) Parser[A] {
	return KeepSecond(open, KeepFirst(m, close))
}

// Any tries each parser in order, returning the first success. It is
// the variadic form of Or, seeded with Failure().
func Any[O any](ps ...Parser[O]) Parser[O] {
	acc := Failure[O]()
	for _, p := range ps {
		acc = acc.Or(p)
	}
	return acc
}

// Choice is an alias for Any.
func Choice[O any](ps ...Parser[O]) Parser[O] {
	return Any(ps...)
}
