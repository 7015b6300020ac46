package adaptor

import (
	"theater-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reservation *ReservationHandler
	Console     *ConsoleHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Reservation: NewReservationHandler(service.Reservation, log),
		Console:     NewConsoleHandler(service.Reservation, log),
	}
}
