package domain

import (
	"context"
	"strings"
	"time"
)

// ReservationSuccessMarker is contained in every message the reservation
// primitive returns when a ticket was issued.
const ReservationSuccessMarker = "successfully"

type Ticket struct {
	ID          int
	Buyer       User
	Showtime    Showtime
	Seat        Seat
	PurchasedAt time.Time
}

type PurchaseRequest struct {
	BuyerID    int
	ShowtimeID int
	Row        string
	SeatNumber int
}

func IsReservationSuccess(message string) bool {
	return strings.Contains(message, ReservationSuccessMarker)
}

type TicketRepository interface {
	// RunInTx runs fn inside one database transaction. The transaction commits
	// when fn returns nil and rolls back otherwise.
	RunInTx(ctx context.Context, fn func(tx TicketTx) error) error
	GetAll(ctx context.Context) ([]Ticket, error)
	GetById(ctx context.Context, id int) (*Ticket, error)
	GetByUserId(ctx context.Context, userID int) ([]Ticket, error)
	GetByShowtimeId(ctx context.Context, showtimeID int) ([]Ticket, error)
}

// TicketTx is the set of purchase steps bound to an open transaction.
type TicketTx interface {
	// ReserveSeat atomically checks that the seat is sellable for the showtime
	// and inserts the ticket. A refusal is reported as *ReservationRejectedError.
	ReserveSeat(ctx context.Context, req PurchaseRequest) (int, error)
	ShowtimeRoomId(ctx context.Context, showtimeID int) (int, error)
	// FindPurchased reads back the ticket of buyer for the seat identified by
	// room, row and seat number.
	FindPurchased(ctx context.Context, req PurchaseRequest, roomID int) (*Ticket, error)
}
