package repository

import (
	"sync"

	"theater-reservation/internal/data/entity"

	"go.uber.org/zap"
)

// TheaterRepository owns the single in-memory theater. Every read or
// mutation runs inside one mutual-exclusion scope so a select-then-fill
// sequence is atomic with respect to other callers.
type TheaterRepository interface {
	// View runs fn with read access to the theater.
	View(fn func(t *entity.Theater))
	// Update runs fn with exclusive access; seat mutations made by fn persist.
	Update(fn func(t *entity.Theater) error) error
}

type theaterRepository struct {
	mu      sync.Mutex
	theater *entity.Theater
	log     *zap.Logger
}

func NewTheaterRepository(theater *entity.Theater, log *zap.Logger) TheaterRepository {
	return &theaterRepository{
		theater: theater,
		log:     log.With(zap.String("repository", "theater")),
	}
}

func (r *theaterRepository) View(fn func(t *entity.Theater)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.theater)
}

func (r *theaterRepository) Update(fn func(t *entity.Theater) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := fn(r.theater); err != nil {
		r.log.Debug("Theater update aborted", zap.Error(err))
		return err
	}

	return nil
}
