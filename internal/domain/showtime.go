package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID        int
	Movie     Movie
	Room      Room
	StartTime time.Time
	Format    string
	Price     decimal.NullDecimal
}

type ShowtimeInput struct {
	MovieID   int
	RoomID    int
	StartTime time.Time
	Format    string
	Price     decimal.NullDecimal
}

type ShowtimeRepository interface {
	Create(ctx context.Context, input ShowtimeInput) (*Showtime, error)
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetAll(ctx context.Context) ([]Showtime, error)
	GetByMovieId(ctx context.Context, movieID int) ([]Showtime, error)
	Update(ctx context.Context, id int, input ShowtimeInput) (*Showtime, error)
	Delete(ctx context.Context, id int) error
}
