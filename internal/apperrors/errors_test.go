package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name    string
		err     *Error
		kind    Kind
		status  int
		message string
	}{
		{"missing field", MissingField(nil), KindMissingField, http.StatusBadRequest, MsgMissingField},
		{"invalid url", InvalidURL(cause), KindInvalidURL, http.StatusBadRequest, MsgInvalidURL},
		{"unreachable", BackendUnreachable(cause), KindBackendUnreachable, http.StatusInternalServerError, MsgInternal},
		{"rejected with body", BackendRejected(http.StatusServiceUnavailable, "rate limited"), KindBackendRejected, http.StatusServiceUnavailable, "rate limited"},
		{"rejected without body", BackendRejected(http.StatusNotFound, ""), KindBackendRejected, http.StatusNotFound, MsgBackendRejected},
		{"rejected with redirect status", BackendRejected(http.StatusFound, ""), KindBackendRejected, http.StatusBadGateway, MsgBackendRejected},
		{"malformed", MalformedBackendResponse(nil), KindMalformedBackendResponse, http.StatusBadRequest, MsgMalformedResponse},
		{"internal", Internal(cause), KindInternal, http.StatusInternalServerError, MsgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", BackendRejected(http.StatusTooManyRequests, "slow down"))

	assert.True(t, errors.Is(err, ErrBackendRejected))
	assert.False(t, errors.Is(err, ErrInvalidURL))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := BackendUnreachable(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "backend_unreachable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	invalid := InvalidURL(nil)
	assert.Same(t, invalid, From(fmt.Errorf("ctx: %w", invalid)))

	plain := errors.New("unexpected")
	got := From(plain)
	require.NotNil(t, got)
	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, MsgInternal, got.Message)
	assert.NotContains(t, got.Message, "unexpected")
}
