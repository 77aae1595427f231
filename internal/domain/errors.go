package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound = errors.New("record not found")

	ErrInvalidCapacity       = errors.New("room capacity must be a positive multiple of 10 and at most 260")
	ErrInvalidSeatNumber     = errors.New("seat number must be between 1 and 10")
	ErrRoomNotFound          = errors.New("room not found")
	ErrRowNotAllowed         = errors.New("row not allowed for room")
	ErrSeatAlreadyExists     = errors.New("seat already exists in room")
	ErrSeatNotFound          = errors.New("seat not found")
	ErrShowtimeNotFound      = errors.New("showtime not found")
	ErrSeatUnavailable       = errors.New("seat unavailable")
	ErrBulkPurchaseFailed    = errors.New("bulk purchase failed")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrPurchaseInconsistency = errors.New("purchased ticket could not be read back in the purchase transaction")
	ErrPurchaseTimeout       = errors.New("purchase timed out")
	ErrEmptyPurchase         = errors.New("at least one ticket must be requested")

	ErrSeatsInUse         = errors.New("seat(s) are referenced by sold tickets")
	ErrRoomInUse          = errors.New("room is referenced by showtimes or sold tickets")
	ErrShowtimeHasTickets = errors.New("showtime has sold tickets")
	ErrInvalidReference   = errors.New("referenced movie, room or user does not exist")
)

type RowNotAllowedError struct {
	Row     string
	Allowed []string
}

func (e *RowNotAllowedError) Error() string {
	return fmt.Sprintf("row %q is not allowed, must be one of: %s", e.Row, strings.Join(e.Allowed, ", "))
}

func (e *RowNotAllowedError) Unwrap() error {
	return ErrRowNotAllowed
}

// ReservationRejectedError carries the message of a reservation primitive call
// that did not issue a ticket.
type ReservationRejectedError struct {
	Message string
}

func (e *ReservationRejectedError) Error() string {
	return e.Message
}

type SeatUnavailableError struct {
	Message string
}

func (e *SeatUnavailableError) Error() string {
	return e.Message
}

func (e *SeatUnavailableError) Unwrap() error {
	return ErrSeatUnavailable
}

// BulkPurchaseError reports the request that aborted a bulk purchase.
type BulkPurchaseError struct {
	Index      int
	Row        string
	SeatNumber int
	Message    string
	Err        error
}

func (e *BulkPurchaseError) Error() string {
	return fmt.Sprintf("bulk purchase failed at request %d (row %s, seat %d): %s",
		e.Index, e.Row, e.SeatNumber, e.Message)
}

func (e *BulkPurchaseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrBulkPurchaseFailed}
	}

	return []error{ErrBulkPurchaseFailed, e.Err}
}
