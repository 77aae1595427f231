package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

const selectSeats = `
	SELECT se.id, se.seat_row, se.seat_number, se.is_occupied, r.id, r.name, r.capacity
	FROM seats se
	JOIN rooms r ON r.id = se.room_id
`

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func scanSeat(row scanner) (*domain.Seat, error) {
	var seat domain.Seat

	err := row.Scan(
		&seat.ID,
		&seat.Row,
		&seat.SeatNumber,
		&seat.Occupied,
		&seat.Room.ID,
		&seat.Room.Name,
		&seat.Room.Capacity,
	)
	if err != nil {
		return nil, err
	}

	return &seat, nil
}

// seatWriteError translates constraint violations raised by inserts and
// updates on the seats table.
func seatWriteError(err error) error {
	pgErr := pgError(err)
	if pgErr == nil {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return domain.ErrSeatAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return domain.ErrRoomNotFound
	case pgerrcode.CheckViolation:
		if pgErr.ConstraintName == "seats_number_check" {
			return domain.ErrInvalidSeatNumber
		}

		return domain.ErrRowNotAllowed
	}

	return err
}

func (p *PostgresSeatRepository) Create(ctx context.Context, seat *domain.Seat) error {
	query := `
		INSERT INTO seats (room_id, seat_row, seat_number, is_occupied)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, seat.Room.ID, seat.Row, seat.SeatNumber, seat.Occupied).Scan(&seat.ID)
	if err != nil {
		return seatWriteError(err)
	}

	return nil
}

func (p *PostgresSeatRepository) GetById(ctx context.Context, id int) (*domain.Seat, error) {
	seat, err := scanSeat(p.db.QueryRow(ctx, selectSeats+` WHERE se.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return seat, nil
}

func (p *PostgresSeatRepository) GetAll(ctx context.Context) ([]domain.Seat, error) {
	return p.list(ctx, selectSeats+` ORDER BY se.id`)
}

func (p *PostgresSeatRepository) GetByRoomId(ctx context.Context, roomID int) ([]domain.Seat, error) {
	return p.list(ctx, selectSeats+` WHERE se.room_id = $1 ORDER BY se.seat_row, se.seat_number`, roomID)
}

func (p *PostgresSeatRepository) list(ctx context.Context, query string, args ...any) ([]domain.Seat, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}

		seats = append(seats, *seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) Exists(ctx context.Context, roomID int, row string, seatNumber int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM seats
			WHERE room_id = $1 AND seat_row = $2 AND seat_number = $3
		)
	`

	var exists bool

	err := p.db.QueryRow(ctx, query, roomID, row, seatNumber).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresSeatRepository) Update(ctx context.Context, seat *domain.Seat) error {
	query := `
		UPDATE seats
		SET room_id = $1, seat_row = $2, seat_number = $3, is_occupied = $4
		WHERE id = $5
	`

	tag, err := p.db.Exec(ctx, query, seat.Room.ID, seat.Row, seat.SeatNumber, seat.Occupied, seat.ID)
	if err != nil {
		return seatWriteError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresSeatRepository) SetOccupied(ctx context.Context, id int, occupied bool) (*domain.Seat, error) {
	query := `
		WITH updated AS (
			UPDATE seats SET is_occupied = $1 WHERE id = $2
			RETURNING id, seat_row, seat_number, is_occupied, room_id
		)
		SELECT u.id, u.seat_row, u.seat_number, u.is_occupied, r.id, r.name, r.capacity
		FROM updated u
		JOIN rooms r ON r.id = u.room_id
	`

	seat, err := scanSeat(p.db.QueryRow(ctx, query, occupied, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return seat, nil
}

func (p *PostgresSeatRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return domain.ErrSeatsInUse
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
