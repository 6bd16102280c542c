package parsica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharClassPredicates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		pred Predicate
		yes  []rune
		no   []rune
	}{
		{name: "digit", pred: IsDigit, yes: []rune("0123456789"), no: []rune("aZ.")},
		{name: "upper", pred: IsUpper, yes: []rune("ABZ"), no: []rune("abz019")},
		{name: "lower", pred: IsLower, yes: []rune("abz"), no: []rune("ABZ019")},
		{name: "alpha", pred: IsAlpha, yes: []rune("aZ"), no: []rune("019.")},
		{name: "alphaNum", pred: IsAlphaNum, yes: []rune("a9"), no: []rune(".,")},
		{name: "hexDigit", pred: IsHexDigit, yes: []rune("09afAF"), no: []rune("gG.")},
		{name: "octDigit", pred: IsOctDigit, yes: []rune("01234567"), no: []rune("89")},
		{name: "binDigit", pred: IsBinDigit, yes: []rune("01"), no: []rune("23")},
		{name: "control", pred: IsControl, yes: []rune{'\n', '\t', 0x7f}, no: []rune("a ")},
		{name: "printable", pred: IsPrintable, yes: []rune("a ."), no: []rune{'\n', 0x7f}},
		{name: "punctuation", pred: IsPunctuation, yes: []rune(".,!"), no: []rune("a9 ")},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, r := range tc.yes {
				assert.True(t, tc.pred(r), "expected %q to satisfy %s", r, tc.name)
			}
			for _, r := range tc.no {
				assert.False(t, tc.pred(r), "expected %q to not satisfy %s", r, tc.name)
			}
		})
	}
}

func TestPredicateCombinators(t *testing.T) {
	t.Parallel()

	isA := IsEqual('a')
	isB := IsEqual('b')

	or := Or(isA, isB)
	assert.True(t, or('a'))
	assert.True(t, or('b'))
	assert.False(t, or('c'))

	and := And(IsAlpha, IsLower)
	assert.True(t, and('a'))
	assert.False(t, and('A'))
	assert.False(t, and('1'))

	not := Not(IsDigit)
	assert.True(t, not('a'))
	assert.False(t, not('1'))
}

func TestCharClassParsers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		parser Parser[rune]
		input  string
	}{
		{name: "digit", parser: DigitChar(), input: "5"},
		{name: "alpha", parser: AlphaChar(), input: "x"},
		{name: "alphaNum", parser: AlphaNumChar(), input: "x"},
		{name: "upper", parser: UpperChar(), input: "X"},
		{name: "lower", parser: LowerChar(), input: "x"},
		{name: "hexDigit", parser: HexDigitChar(), input: "f"},
		{name: "octDigit", parser: OctDigitChar(), input: "7"},
		{name: "binDigit", parser: BinDigitChar(), input: "1"},
		{name: "printable", parser: PrintChar(), input: "!"},
		{name: "punctuation", parser: PunctuationChar(), input: "!"},
		{name: "space", parser: SpaceChar(), input: " "},
		{name: "tab", parser: TabChar(), input: "\t"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := tc.parser.Run(tc.input)
			assert.True(t, result.IsSuccess())
			assert.Equal(t, "", string(result.Remainder()))
		})
	}
}
