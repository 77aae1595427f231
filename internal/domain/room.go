package domain

import (
	"context"
	"slices"
	"strings"
)

const (
	SeatsPerRow = 10

	// Row labels are single letters, so a room can have at most 26 rows.
	maxRows     = 26
	MaxCapacity = maxRows * SeatsPerRow
)

type Room struct {
	ID       int
	Name     string
	Capacity int
}

// ValidCapacity reports whether capacity describes a complete seat grid.
func ValidCapacity(capacity int) bool {
	return capacity > 0 && capacity%SeatsPerRow == 0 && capacity <= MaxCapacity
}

// RowsFor returns the row labels of a room with the given capacity, in order
// ("A", "B", ...). It returns nil when the capacity is not valid.
func RowsFor(capacity int) []string {
	if !ValidCapacity(capacity) {
		return nil
	}

	rows := make([]string, capacity/SeatsPerRow)
	for i := range rows {
		rows[i] = string(rune('A' + i))
	}

	return rows
}

// NormalizeRow upper-cases and trims a row label.
func NormalizeRow(row string) string {
	return strings.ToUpper(strings.TrimSpace(row))
}

func RowAllowed(capacity int, row string) bool {
	return slices.Contains(RowsFor(capacity), NormalizeRow(row))
}

// ResizeRows returns the rows that appear and disappear when a room goes from
// oldCapacity to newCapacity.
func ResizeRows(oldCapacity, newCapacity int) (added, removed []string) {
	oldRows := RowsFor(oldCapacity)
	newRows := RowsFor(newCapacity)

	for _, row := range newRows {
		if !slices.Contains(oldRows, row) {
			added = append(added, row)
		}
	}

	for _, row := range oldRows {
		if !slices.Contains(newRows, row) {
			removed = append(removed, row)
		}
	}

	return added, removed
}

// NewSeatGrid builds the unoccupied seats of the given rows for a room.
func NewSeatGrid(room Room, rows []string) []Seat {
	seats := make([]Seat, 0, len(rows)*SeatsPerRow)

	for _, row := range rows {
		for number := 1; number <= SeatsPerRow; number++ {
			seats = append(seats, Seat{
				Room:       room,
				Row:        row,
				SeatNumber: number,
			})
		}
	}

	return seats
}

type RoomRepository interface {
	// Create stores the room and its seat grid in a single transaction.
	Create(ctx context.Context, room *Room) error
	GetById(ctx context.Context, id int) (*Room, error)
	GetAll(ctx context.Context) ([]Room, error)
	// Update renames the room and resizes its seat grid to match the new capacity.
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id int) error
}
