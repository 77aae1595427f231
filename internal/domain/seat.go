package domain

import "context"

type Seat struct {
	ID         int
	Room       Room
	Row        string
	SeatNumber int
	Occupied   bool
}

func ValidSeatNumber(number int) bool {
	return number >= 1 && number <= SeatsPerRow
}

type SeatRepository interface {
	Create(ctx context.Context, seat *Seat) error
	GetById(ctx context.Context, id int) (*Seat, error)
	GetAll(ctx context.Context) ([]Seat, error)
	GetByRoomId(ctx context.Context, roomID int) ([]Seat, error)
	Exists(ctx context.Context, roomID int, row string, seatNumber int) (bool, error)
	Update(ctx context.Context, seat *Seat) error
	SetOccupied(ctx context.Context, id int, occupied bool) (*Seat, error)
	Delete(ctx context.Context, id int) error
}
