package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"theater-reservation/internal/dto/request"
	"theater-reservation/internal/dto/response"
	"theater-reservation/internal/usecase"
	"theater-reservation/pkg/utils"

	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// GetTheater handles GET /api/theater
func (h *ReservationHandler) GetTheater(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.TheaterInfo(r.Context()))
}

// GetSeatMap handles GET /api/theater/seats
// With ?format=text the plain seat map is returned instead of JSON.
func (h *ReservationHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap := h.service.SeatMap(r.Context())

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(seatMap.Text))
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ReserveSeats handles POST /api/reservations
func (h *ReservationHandler) ReserveSeats(w http.ResponseWriter, r *http.Request) {
	var req request.ReserveSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	outcome, err := h.service.ReserveSeats(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "reserve seats")
		return
	}

	switch outcome.Reason {
	case response.ReasonNone:
		utils.ResponseCreated(w, outcome.Message(), outcome)
	case response.ReasonInvalidCount, response.ReasonExceedsCapacity:
		utils.ResponseUnprocessable(w, outcome.Message(), outcome)
	default:
		utils.ResponseConflict(w, outcome.Message(), outcome)
	}
}

// handleServiceError handles errors untuk reservation operations
func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
