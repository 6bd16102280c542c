package parsica

// PairContainer carries the two outputs of a Pair/SeparatedPair parser.
type PairContainer[L, R any] struct {
	Left  L
	Right R
}

// NewPairContainer builds a PairContainer from its two halves.
func NewPairContainer[L, R any](left L, right R) PairContainer[L, R] {
	return PairContainer[L, R]{Left: left, Right: right}
}
