package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

// SeatUpdate replaces every attribute of a seat.
type SeatUpdate struct {
	RoomID     int
	Row        string
	SeatNumber int
	Occupied   bool
}

type SeatService struct {
	logger *slog.Logger
	rooms  domain.RoomRepository
	seats  domain.SeatRepository
}

func NewSeatService(logger *slog.Logger, rooms domain.RoomRepository, seats domain.SeatRepository) *SeatService {
	return &SeatService{
		logger: logger,
		rooms:  rooms,
		seats:  seats,
	}
}

func (s *SeatService) CreateSeat(ctx context.Context, roomID int, row string, seatNumber int) (*domain.Seat, error) {
	if !domain.ValidSeatNumber(seatNumber) {
		return nil, domain.ErrInvalidSeatNumber
	}

	room, err := s.rooms.GetById(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	row = domain.NormalizeRow(row)

	if !domain.RowAllowed(room.Capacity, row) {
		return nil, &domain.RowNotAllowedError{
			Row:     row,
			Allowed: domain.RowsFor(room.Capacity),
		}
	}

	exists, err := s.seats.Exists(ctx, room.ID, row, seatNumber)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, domain.ErrSeatAlreadyExists
	}

	seat := &domain.Seat{
		Room:       *room,
		Row:        row,
		SeatNumber: seatNumber,
	}

	// a concurrent insert of the same seat is caught by the unique constraint
	err = s.seats.Create(ctx, seat)
	if err != nil {
		return nil, err
	}

	return seat, nil
}

func (s *SeatService) GetSeat(ctx context.Context, id int) (*domain.Seat, error) {
	seat, err := s.seats.GetById(ctx, id)
	if err != nil {
		return nil, seatError(err)
	}

	return seat, nil
}

func (s *SeatService) ListSeats(ctx context.Context) ([]domain.Seat, error) {
	return s.seats.GetAll(ctx)
}

func (s *SeatService) ListSeatsByRoom(ctx context.Context, roomID int) ([]domain.Seat, error) {
	_, err := s.rooms.GetById(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	return s.seats.GetByRoomId(ctx, roomID)
}

// UpdateSeat stores the given attributes as they are. Bounds are not checked
// again, the table constraints still reject malformed rows and numbers.
func (s *SeatService) UpdateSeat(ctx context.Context, id int, update SeatUpdate) (*domain.Seat, error) {
	seat := &domain.Seat{
		ID:         id,
		Room:       domain.Room{ID: update.RoomID},
		Row:        domain.NormalizeRow(update.Row),
		SeatNumber: update.SeatNumber,
		Occupied:   update.Occupied,
	}

	err := s.seats.Update(ctx, seat)
	if err != nil {
		return nil, seatError(err)
	}

	return s.GetSeat(ctx, id)
}

func (s *SeatService) OccupySeat(ctx context.Context, id int) (*domain.Seat, error) {
	return s.setOccupied(ctx, id, true)
}

func (s *SeatService) FreeSeat(ctx context.Context, id int) (*domain.Seat, error) {
	return s.setOccupied(ctx, id, false)
}

func (s *SeatService) setOccupied(ctx context.Context, id int, occupied bool) (*domain.Seat, error) {
	seat, err := s.seats.SetOccupied(ctx, id, occupied)
	if err != nil {
		return nil, seatError(err)
	}

	return seat, nil
}

func (s *SeatService) DeleteSeat(ctx context.Context, id int) error {
	return seatError(s.seats.Delete(ctx, id))
}

func seatError(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrSeatNotFound
	}

	return err
}
