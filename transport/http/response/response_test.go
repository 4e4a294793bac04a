package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbooking/shared/failure"
	"salonbooking/transport/http/response"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"state": "staff-selection"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"data":{"state":"staff-selection"}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantMsg    string
		wantFields map[string]string
	}{
		{name: "failure", err: failure.Conflict("submission in progress"), wantCode: http.StatusConflict, wantMsg: "submission in progress"},
		{
			name:     "wrapped failure keeps its own message",
			err:      fmt.Errorf("failed to submit booking: %w", failure.BadGateway("contact upsert failed")),
			wantCode: http.StatusBadGateway,
			wantMsg:  "contact upsert failed",
		},
		{name: "plain error is not leaked", err: errors.New("dial tcp: refused"), wantCode: http.StatusInternalServerError, wantMsg: "INTERNAL SERVER ERROR"},
		{
			name:       "field errors",
			err:        failure.InvalidFields("phone_number is required", map[string]string{"phone_number": "phone_number is required"}),
			wantCode:   http.StatusBadRequest,
			wantMsg:    "phone_number is required",
			wantFields: map[string]string{"phone_number": "phone_number is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantMsg, *body.Error)
			assert.Equal(t, tt.wantFields, body.Fields)
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
