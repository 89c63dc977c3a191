package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	custom := "USER_ALREADY_EXISTS"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no token", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("not yours", true), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", NewConflictError("taken", true, nil), http.StatusConflict, "CONFLICT"},
		{"conflict custom code", NewConflictError("taken", true, &custom), http.StatusConflict, custom},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestHTTPError_As(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewForbiddenError("Forbidden", false))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestHTTPError_WithMessage(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	changed := base.WithMessage("Ad not found")

	assert.Equal(t, "Ad not found", changed.Message)
	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, base.Status, changed.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
}
