package parsica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewParseError("digit", Input("x"))

	assert.Equal(t, "digit", err.Expected)
	assert.Equal(t, `"x"`, err.Got)
	assert.Contains(t, err.Error(), "expected digit")
}

func TestParseErrorAtEOF(t *testing.T) {
	t.Parallel()

	err := NewParseError("digit", Input(""))

	assert.Equal(t, "EOF", err.Got)
}

func TestProgrammerErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ProgrammerError{Kind: ErrInvalidArgument, Msg: "boom"}

	assert.Contains(t, err.Error(), string(ErrInvalidArgument))
	assert.Contains(t, err.Error(), "boom")
}

func TestPanicProgrammerError(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, (&ProgrammerError{Kind: ErrDoubleBind, Msg: "boom"}).Error(), func() {
		panicProgrammerError(ErrDoubleBind, "boom")
	})
}
