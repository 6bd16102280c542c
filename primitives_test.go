package parsica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChar(t *testing.T) {
	t.Parallel()

	// Arrange
	parser := Char('(')

	// Act
	result := parser.Run("(foo")

	// Assert
	assert.Equal(t, int32('('), result.Output())
	assert.Equal(t, "foo", string(result.Remainder()))
}

func TestCharFailsOnNotFoundChar(t *testing.T) {
	t.Parallel()

	parser := Char('(')
	result := parser.Run("*foo")

	assert.True(t, result.IsFail())
	assert.Equal(t, "char(()", result.Expected())
}

func TestCharI(t *testing.T) {
	t.Parallel()

	parser := CharI('k')

	lower := parser.Run("kiwi")
	assert.True(t, lower.IsSuccess())
	assert.Equal(t, int32('k'), lower.Output())

	upper := parser.Run("Kiwi")
	assert.True(t, upper.IsSuccess())
	assert.Equal(t, int32('K'), upper.Output(), "CharI preserves the actual case found in the input")
}

func TestToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		token         string
		input         string
		wantErr       bool
		wantRemaining string
	}{
		{name: "exact match", token: "let", input: "let x", wantRemaining: " x"},
		{name: "prefix mismatch", token: "let", input: "var x", wantErr: true},
		{name: "input too short", token: "let", input: "le", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := Token(tc.token).Run(tc.input)
			assert.Equal(t, tc.wantErr, result.IsFail())
			if !tc.wantErr {
				assert.Equal(t, tc.token, result.Output())
				assert.Equal(t, tc.wantRemaining, string(result.Remainder()))
			}
		})
	}
}

func TestTokenPanicsOnEmptyLiteral(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Token("")
	})
}

func TestNewline(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "LF", input: "\nrest", want: "\n"},
		{name: "CRLF", input: "\r\nrest", want: "\r\n"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := Newline().Run(tc.input)
			assert.True(t, result.IsSuccess())
			assert.Equal(t, tc.want, result.Output())
			assert.Equal(t, "rest", string(result.Remainder()))
		})
	}
}

func BenchmarkToken(b *testing.B) {
	p := Token("token")
	for i := 0; i < b.N; i++ {
		p.Run("token")
	}
}
