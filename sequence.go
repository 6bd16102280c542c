package parsica

// Preceded parses and discards a result from the prefix parser, then
// parses and returns a result from the main parser.
func Preceded[OP, O any](prefix Parser[OP], parser Parser[O]) Parser[O] {
	return KeepSecond(prefix, parser)
}

// Terminated parses a result from the main parser, then parses and
// discards a result from the suffix parser, keeping only the main
// parser's output.
func Terminated[O, OS any](parser Parser[O], suffix Parser[OS]) Parser[O] {
	return KeepFirst(parser, suffix)
}

// Delimited parses and discards prefix, parses and returns the main
// parser's output, then parses and discards suffix. It is the same
// combinator as Between, under the name gomme itself used.
func Delimited[OP, O, OS any](prefix Parser[OP], parser Parser[O], suffix Parser[OS]) Parser[O] {
	return Between(prefix, parser, suffix)
}

// Pair applies two parsers in sequence and returns both outputs paired
// up; the right parser runs on whatever the left parser left behind.
func Pair[L, R any](left Parser[L], right Parser[R]) Parser[PairContainer[L, R]] {
	return func(in Input) ParseResult[PairContainer[L, R]] {
		leftRes := left(in)
		if leftRes.IsFail() {
			return FailWith[PairContainer[L, R]](leftRes.Error())
		}
		rightRes := right(leftRes.Remainder())
		if rightRes.IsFail() {
			return FailWith[PairContainer[L, R]](rightRes.Error())
		}
		return Succeed(NewPairContainer(leftRes.Output(), rightRes.Output()), rightRes.Remainder())
	}
}

// SeparatedPair applies a left parser, a separator (whose output is
// discarded), and a right parser, and returns the left and right
// outputs paired up.
func SeparatedPair[L, S, R any](left Parser[L], sep Parser[S], right Parser[R]) Parser[PairContainer[L, R]] {
	return Pair(Terminated(left, sep), right)
}
