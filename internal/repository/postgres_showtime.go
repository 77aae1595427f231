package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

const selectShowtimes = `
	SELECT
		sh.id, sh.start_time, COALESCE(sh.format, ''), sh.price,
		m.id, m.title, COALESCE(m.description, ''), COALESCE(m.duration, 0), COALESCE(m.poster_url, ''),
		r.id, r.name, r.capacity
	FROM showtimes sh
	JOIN movies m ON m.id = sh.movie_id
	JOIN rooms r ON r.id = sh.room_id
`

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func showtimeFields(st *domain.Showtime) []any {
	return []any{
		&st.ID,
		&st.StartTime,
		&st.Format,
		&st.Price,
		&st.Movie.ID,
		&st.Movie.Title,
		&st.Movie.Description,
		&st.Movie.Duration,
		&st.Movie.PosterUrl,
		&st.Room.ID,
		&st.Room.Name,
		&st.Room.Capacity,
	}
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, input domain.ShowtimeInput) (*domain.Showtime, error) {
	query := `
		INSERT INTO showtimes (movie_id, room_id, start_time, format, price)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id
	`

	var id int

	err := p.db.QueryRow(ctx, query, input.MovieID, input.RoomID, input.StartTime, input.Format, input.Price).Scan(&id)
	if err != nil {
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return nil, domain.ErrInvalidReference
		}

		return nil, err
	}

	return p.GetById(ctx, id)
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, selectShowtimes+` WHERE sh.id = $1`, id).Scan(showtimeFields(&showtime)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context) ([]domain.Showtime, error) {
	return p.list(ctx, selectShowtimes+` ORDER BY sh.start_time, sh.id`)
}

func (p *PostgresShowtimeRepository) GetByMovieId(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	return p.list(ctx, selectShowtimes+` WHERE sh.movie_id = $1 ORDER BY sh.start_time, sh.id`, movieID)
}

func (p *PostgresShowtimeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Showtime, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(showtimeFields(&showtime)...)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowtimeRepository) Update(ctx context.Context, id int, input domain.ShowtimeInput) (*domain.Showtime, error) {
	query := `
		UPDATE showtimes
		SET movie_id = $1, room_id = $2, start_time = $3, format = NULLIF($4, ''), price = $5
		WHERE id = $6
	`

	tag, err := p.db.Exec(ctx, query, input.MovieID, input.RoomID, input.StartTime, input.Format, input.Price, id)
	if err != nil {
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return nil, domain.ErrInvalidReference
		}

		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return p.GetById(ctx, id)
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return domain.ErrShowtimeHasTickets
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
