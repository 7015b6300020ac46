package usecase

import (
	"theater-reservation/internal/data/repository"
	"theater-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Reservation: NewReservationService(repo, config, log),
	}
}
