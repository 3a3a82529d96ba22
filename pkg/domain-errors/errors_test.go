package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesThroughWrapping(t *testing.T) {
	base := New(CodeAnchorFailed, "ledger unreachable")
	wrapped := fmt.Errorf("submit: %w", base)

	assert.True(t, Is(wrapped, CodeAnchorFailed))
	assert.False(t, Is(wrapped, CodeStorage))
	assert.False(t, Is(errors.New("plain"), CodeAnchorFailed))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeStorage, "append failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, CodeStorage, CodeOf(err))
	assert.Equal(t, "append failed", MessageOf(err))
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("unexpected")))
	assert.Equal(t, "", MessageOf(errors.New("unexpected")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeValidation:          http.StatusBadRequest,
		CodeBadRequest:          http.StatusBadRequest,
		CodeNotFound:            http.StatusNotFound,
		CodeAnchorFailed:        http.StatusBadGateway,
		CodeUnavailable:         http.StatusServiceUnavailable,
		CodeAnchoredNotRecorded: http.StatusInternalServerError,
		CodeStorage:             http.StatusInternalServerError,
		CodeInternal:            http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), string(code))
	}
}
