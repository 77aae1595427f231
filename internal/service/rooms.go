// Package service holds the inventory and ticketing operations. It validates
// input, translates repository errors into the domain taxonomy and leaves
// persistence to the domain repositories.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

type RoomService struct {
	logger *slog.Logger
	rooms  domain.RoomRepository
}

func NewRoomService(logger *slog.Logger, rooms domain.RoomRepository) *RoomService {
	return &RoomService{
		logger: logger,
		rooms:  rooms,
	}
}

// CreateRoom stores the room together with its full grid of unoccupied seats.
func (s *RoomService) CreateRoom(ctx context.Context, name string, capacity int) (*domain.Room, error) {
	if !domain.ValidCapacity(capacity) {
		return nil, domain.ErrInvalidCapacity
	}

	room := &domain.Room{
		Name:     name,
		Capacity: capacity,
	}

	err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	s.logger.Info("room created", "room_id", room.ID, "capacity", room.Capacity)

	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id int) (*domain.Room, error) {
	room, err := s.rooms.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	return room, nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

// UpdateRoom renames the room and resizes its seat grid. Shrinking fails with
// ErrSeatsInUse when a removed seat has been sold.
func (s *RoomService) UpdateRoom(ctx context.Context, id int, name string, capacity int) (*domain.Room, error) {
	if !domain.ValidCapacity(capacity) {
		return nil, domain.ErrInvalidCapacity
	}

	room := &domain.Room{
		ID:       id,
		Name:     name,
		Capacity: capacity,
	}

	err := s.rooms.Update(ctx, room)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id int) error {
	err := s.rooms.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ErrRoomNotFound
		}

		return err
	}

	s.logger.Info("room deleted", "room_id", id)

	return nil
}
