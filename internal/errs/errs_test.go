package errs

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	code := "POKEMON_ALREADY_EXISTS"

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"conflict custom code", NewConflictError("dup", true, &code), http.StatusConflict, code},
		{"conflict", NewConflictError("dup", true, nil), http.StatusConflict, "CONFLICT"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"save failed", NewSaveFailedError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewInternalServerError()
	changed := base.WithMessage("Something went wrong while saving")

	assert.Equal(t, "Internal Server Error", base.Message)
	assert.Equal(t, "Something went wrong while saving", changed.Message)
	assert.Equal(t, base.Status, changed.Status)
}

func TestStatusOf(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewNotFoundError("Owner not found", false, nil))

	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(fmt.Errorf("boom")))
}
