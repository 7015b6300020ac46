package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"theater-reservation/internal/data/entity"
	"theater-reservation/internal/data/repository"
	"theater-reservation/internal/dto/request"
	"theater-reservation/internal/dto/response"
	"theater-reservation/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReservationService(t *testing.T) ReservationService {
	t.Helper()

	config := &utils.Config{Reservation: utils.ReservationConfig{Contiguous: true}}
	repo := repository.NewRepository(newRoxy(t), zap.NewNop())
	return NewReservationService(repo, config, zap.NewNop())
}

func TestReservationService_ReserveSeats(t *testing.T) {
	svc := newTestReservationService(t)

	outcome, err := svc.ReserveSeats(context.Background(), &request.ReserveSeatsRequest{
		Count: 2,
		Name:  "John",
	})
	require.NoError(t, err)

	assert.True(t, outcome.Success())
	assert.True(t, strings.HasPrefix(outcome.ReservationID, "RES-"))
	assert.Equal(t, "I've reserved 2 seats for you at the Roxy in row 7, John.", outcome.Message())

	seatMap := svc.SeatMap(context.Background())
	require.Len(t, seatMap.Rows, 15)
	assert.Equal(t, "X X _ _ _ _ _ _ _ _ ", seatMap.Rows[6])
	assert.Contains(t, seatMap.Text, " 7 X X _ _ _ _ _ _ _ _ \n")
}

func TestReservationService_RejectionHasNoReservationID(t *testing.T) {
	svc := newTestReservationService(t)
	before := svc.SeatMap(context.Background()).Text

	outcome, err := svc.ReserveSeats(context.Background(), &request.ReserveSeatsRequest{
		Count: 12,
		Name:  "Bob",
	})
	require.NoError(t, err)

	assert.Equal(t, response.ReasonExceedsCapacity, outcome.Reason)
	assert.Empty(t, outcome.ReservationID)
	assert.Equal(t, before, svc.SeatMap(context.Background()).Text)
}

func TestReservationService_InvalidRequest(t *testing.T) {
	svc := newTestReservationService(t)

	_, err := svc.ReserveSeats(context.Background(), &request.ReserveSeatsRequest{Count: 2})
	assert.ErrorContains(t, err, "validation failed")

	_, err = svc.ReserveSeats(context.Background(), &request.ReserveSeatsRequest{
		Count: 2,
		Name:  strings.Repeat("a", 65),
	})
	assert.ErrorContains(t, err, "validation failed")

	_, err = svc.ReserveSeats(context.Background(), nil)
	assert.Error(t, err)
}

func TestReservationService_ValidityChecks(t *testing.T) {
	svc := newTestReservationService(t)

	assert.True(t, svc.IsValidSeatCount("12"))
	assert.False(t, svc.IsValidSeatCount("16"))
	assert.False(t, svc.IsValidNumberForReservation(12))
	assert.True(t, svc.IsValidNumberForReservation(10))
}

func TestReservationService_TheaterInfo(t *testing.T) {
	info := newTestReservationService(t).TheaterInfo(context.Background())

	assert.Equal(t, &response.TheaterInfo{
		Name:           "Roxy",
		TotalRows:      15,
		SeatsPerRow:    10,
		AccessibleRows: []int{6, 10},
	}, info)
}

type failingTheaterRepo struct {
	repository.TheaterRepository
	err error
}

func (r failingTheaterRepo) Update(func(*entity.Theater) error) error {
	return r.err
}

func TestReservationService_PropagatesRepositoryError(t *testing.T) {
	repo := repository.NewRepository(newRoxy(t), zap.NewNop())
	repo.Theater = failingTheaterRepo{TheaterRepository: repo.Theater, err: errors.New("theater unavailable")}
	svc := NewReservationService(repo, &utils.Config{}, zap.NewNop())

	outcome, err := svc.ReserveSeats(context.Background(), &request.ReserveSeatsRequest{Count: 2, Name: "John"})

	assert.Nil(t, outcome)
	assert.ErrorContains(t, err, "theater unavailable")
}
