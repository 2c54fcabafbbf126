package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cadastro/pkg/domain-errors"
)

// The wire codes and statuses are the envelope contract every client and
// feature test relies on; pin them here so a drift fails fast.
func TestWriteError_EnvelopeContract(t *testing.T) {
	cases := []struct {
		name     string
		code     dErrors.Code
		wantCode string
		wantHTTP int
	}{
		{"not found", dErrors.CodeNotFound, "not_found", http.StatusNotFound},
		{"bad request", dErrors.CodeBadRequest, "bad_request", http.StatusBadRequest},
		{"validation", dErrors.CodeValidation, "validation_error", http.StatusUnprocessableEntity},
		{"internal", dErrors.CodeInternal, "internal_error", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, dErrors.New(tc.code, "something went wrong"))

			assert.Equal(t, tc.wantHTTP, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var errResp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tc.wantCode, errResp["error"])
			assert.Equal(t, "something went wrong", errResp["error_description"])
		})
	}
}

func TestWriteError_UnknownErrorFallsBackToInternal(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("plumbing failure"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var errResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "internal_error", errResp["error"])
}
