package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

func (p *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO rooms (name, capacity)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, room.Name, room.Capacity).Scan(&room.ID)
		if err != nil {
			return err
		}

		return insertSeatGrid(ctx, tx, domain.NewSeatGrid(*room, domain.RowsFor(room.Capacity)))
	})
}

func insertSeatGrid(ctx context.Context, tx pgx.Tx, seats []domain.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(seats))
	for _, seat := range seats {
		rows = append(rows, []any{
			seat.Room.ID,
			seat.Row,
			seat.SeatNumber,
			seat.Occupied,
		})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"seats"},
		[]string{"room_id", "seat_row", "seat_number", "is_occupied"},
		pgx.CopyFromRows(rows),
	)

	return err
}

func (p *PostgresRoomRepository) GetById(ctx context.Context, id int) (*domain.Room, error) {
	query := `SELECT id, name, capacity FROM rooms WHERE id = $1`

	var room domain.Room

	err := p.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.Name, &room.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &room, nil
}

func (p *PostgresRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT id, name, capacity FROM rooms ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(&room.ID, &room.Name, &room.Capacity)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update locks the room, reconciles its seat grid with the new capacity and
// then stores the new attributes. Rows that disappear are only deleted when
// none of their seats has been sold.
func (p *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var currentCapacity int

		query := `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`

		err := tx.QueryRow(ctx, query, room.ID).Scan(&currentCapacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		added, removed := domain.ResizeRows(currentCapacity, room.Capacity)

		if len(removed) > 0 {
			err = deleteRows(ctx, tx, room.ID, removed)
			if err != nil {
				return err
			}
		}

		err = insertSeatGrid(ctx, tx, domain.NewSeatGrid(*room, added))
		if err != nil {
			return err
		}

		query = `UPDATE rooms SET name = $1, capacity = $2 WHERE id = $3`

		_, err = tx.Exec(ctx, query, room.Name, room.Capacity, room.ID)

		return err
	})
}

func deleteRows(ctx context.Context, tx pgx.Tx, roomID int, rows []string) error {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM tickets t
			JOIN seats s ON s.id = t.seat_id
			WHERE s.room_id = $1 AND s.seat_row = ANY($2)
		)
	`

	var sold bool

	err := tx.QueryRow(ctx, query, roomID, rows).Scan(&sold)
	if err != nil {
		return err
	}

	if sold {
		return domain.ErrSeatsInUse
	}

	query = `DELETE FROM seats WHERE room_id = $1 AND seat_row = ANY($2)`

	_, err = tx.Exec(ctx, query, roomID, rows)
	if err != nil {
		// a ticket was sold between the check and the delete
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return domain.ErrSeatsInUse
		}

		return err
	}

	return nil
}

func (p *PostgresRoomRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM rooms WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return domain.ErrRoomInUse
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
