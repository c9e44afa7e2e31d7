package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinayakagude/chimes/internal/apperr"
)

var errTemplate = &apperr.Error{Message: "unknown sound: %s"}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errTemplate.Fmt("bell")

	assert.Equal(t, "unknown sound: bell", err.Error())
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrapExposesCause(t *testing.T) {
	err := errTemplate.Wrap(io.ErrUnexpectedEOF)

	assert.ErrorIs(t, err, errTemplate)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), io.ErrUnexpectedEOF.Error())
}

func TestDistinctTemplatesDoNotMatch(t *testing.T) {
	other := &apperr.Error{Message: "unknown sound: %s"}

	assert.False(t, errors.Is(errTemplate.Fmt("a"), other))
}
