package adaptor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"theater-reservation/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestReservationHandler_ReserveSeats(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "reserves standard seats",
			body:        `{"count":2,"name":"John","accessible":false}`,
			wantStatus:  http.StatusCreated,
			wantMessage: "I've reserved 2 seats for you at the Roxy in row 7, John.",
		},
		{
			name:        "zero seats",
			body:        `{"count":0,"name":"John"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Invalid number of seats.",
		},
		{
			name:        "more than a row",
			body:        `{"count":12,"name":"John"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Sorry, we can't reserve more than 10 seats in a single row.",
		},
		{
			name:        "missing name",
			body:        `{"count":2}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "malformed body",
			body:        `{"count":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewReservationHandler(newTestService(t), zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ReserveSeats(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.wantStatus == http.StatusCreated, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestReservationHandler_NoRoomIsConflict(t *testing.T) {
	h := NewReservationHandler(newTestService(t), zap.NewNop())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ReserveSeats(rec, httptest.NewRequest(http.MethodPost, "/api/reservations",
			strings.NewReader(`{"count":10,"name":"Group","accessible":true}`)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ReserveSeats(rec, httptest.NewRequest(http.MethodPost, "/api/reservations",
		strings.NewReader(`{"count":1,"name":"Amy","accessible":true}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Sorry, we don't have that many seats together for you.", decodeResponse(t, rec).Message)
}

func TestReservationHandler_GetSeatMap(t *testing.T) {
	h := NewReservationHandler(newTestService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.GetSeatMap(rec, httptest.NewRequest(http.MethodGet, "/api/theater/seats?format=text", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), " 1 _ _ _ _ _ _ _ _ _ _ \n"))
	assert.Contains(t, rec.Body.String(), "10 = = = = = = = = = = \n")

	rec = httptest.NewRecorder()
	h.GetSeatMap(rec, httptest.NewRequest(http.MethodGet, "/api/theater/seats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, decodeResponse(t, rec).Status)
}

func TestReservationHandler_GetTheater(t *testing.T) {
	h := NewReservationHandler(newTestService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.GetTheater(rec, httptest.NewRequest(http.MethodGet, "/api/theater", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Roxy", data["name"])
	assert.Equal(t, float64(15), data["total_rows"])
	assert.Equal(t, []any{float64(6), float64(10)}, data["accessible_rows"])
}
