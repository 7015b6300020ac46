package usecase

import (
	"context"
	"fmt"

	"theater-reservation/internal/data/entity"
	"theater-reservation/internal/data/repository"
	"theater-reservation/internal/dto/request"
	"theater-reservation/internal/dto/response"
	"theater-reservation/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	// ReserveSeats returns an error only when the request itself is malformed;
	// rejections are reported through the outcome.
	ReserveSeats(ctx context.Context, req *request.ReserveSeatsRequest) (*response.Outcome, error)

	IsValidSeatCount(input string) bool
	IsValidNumberForReservation(count int) bool

	SeatMap(ctx context.Context) *response.SeatMapResponse
	TheaterInfo(ctx context.Context) *response.TheaterInfo
}

type reservationService struct {
	repo      *repository.Repository
	allocator *Allocator
	log       *zap.Logger
}

func NewReservationService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:      repo,
		allocator: NewAllocator(config.Reservation.Contiguous),
		log:       log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) ReserveSeats(ctx context.Context, req *request.ReserveSeatsRequest) (*response.Outcome, error) {
	if req == nil {
		return nil, fmt.Errorf("invalid reservation request: nil")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var outcome response.Outcome
	err := s.repo.Theater.Update(func(t *entity.Theater) error {
		outcome = s.allocator.ReserveSeats(t, req.Count, req.Name, req.Accessible)
		return nil
	})
	if err != nil {
		s.log.Error("Failed to reserve seats", zap.Error(err), zap.Int("count", req.Count))
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	if !outcome.Success() {
		s.log.Warn("Reservation rejected",
			zap.String("reason", string(outcome.Reason)),
			zap.Int("count", req.Count),
			zap.Bool("accessible", req.Accessible),
		)
		return &outcome, nil
	}

	outcome.ReservationID = utils.GenerateReservationID()

	s.log.Info("Seats reserved",
		zap.String("reservation_id", outcome.ReservationID),
		zap.String("name", outcome.Name),
		zap.Int("row", outcome.Row),
		zap.Int("count", outcome.Count),
		zap.Strings("seats", outcome.Seats),
		zap.Bool("accessible", req.Accessible),
	)

	return &outcome, nil
}

func (s *reservationService) IsValidSeatCount(input string) bool {
	var valid bool
	s.repo.Theater.View(func(t *entity.Theater) {
		valid = IsValidSeatCount(t, input)
	})
	return valid
}

func (s *reservationService) IsValidNumberForReservation(count int) bool {
	var valid bool
	s.repo.Theater.View(func(t *entity.Theater) {
		valid = IsValidNumberForReservation(t, count)
	})
	return valid
}

func (s *reservationService) SeatMap(ctx context.Context) *response.SeatMapResponse {
	resp := &response.SeatMapResponse{}
	s.repo.Theater.View(func(t *entity.Theater) {
		resp.Theater = t.Name()
		resp.Text = t.String()
		resp.Rows = make([]string, 0, t.TotalRows())
		for _, row := range t.Rows() {
			resp.Rows = append(resp.Rows, row.String())
		}
	})
	return resp
}

func (s *reservationService) TheaterInfo(ctx context.Context) *response.TheaterInfo {
	info := &response.TheaterInfo{}
	s.repo.Theater.View(func(t *entity.Theater) {
		info.Name = t.Name()
		info.TotalRows = t.TotalRows()
		info.SeatsPerRow = t.SeatsPerRow()
		info.AccessibleRows = t.AccessibleRows()
	})
	return info
}
