package repository

import (
	"theater-reservation/internal/data/entity"

	"go.uber.org/zap"
)

type Repository struct {
	Theater TheaterRepository
}

func NewRepository(theater *entity.Theater, log *zap.Logger) *Repository {
	return &Repository{
		Theater: NewTheaterRepository(theater, log),
	}
}
