package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

// The showtime's room and the seat's room are joined separately, a seat may
// have been moved to another room after the sale.
const selectTickets = `
	SELECT
		t.id, t.purchased_at,
		u.id, u.first_name, u.last_name, u.email,
		sh.id, sh.start_time, COALESCE(sh.format, ''), sh.price,
		m.id, m.title, COALESCE(m.description, ''), COALESCE(m.duration, 0), COALESCE(m.poster_url, ''),
		r.id, r.name, r.capacity,
		se.id, se.seat_row, se.seat_number, se.is_occupied,
		sr.id, sr.name, sr.capacity
	FROM tickets t
	JOIN users u ON u.id = t.user_id
	JOIN showtimes sh ON sh.id = t.showtime_id
	JOIN movies m ON m.id = sh.movie_id
	JOIN rooms r ON r.id = sh.room_id
	JOIN seats se ON se.id = t.seat_id
	JOIN rooms sr ON sr.id = se.room_id
`

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

func scanTicket(row scanner) (*domain.Ticket, error) {
	var ticket domain.Ticket

	st := &ticket.Showtime
	seat := &ticket.Seat

	err := row.Scan(
		&ticket.ID,
		&ticket.PurchasedAt,
		&ticket.Buyer.ID,
		&ticket.Buyer.FirstName,
		&ticket.Buyer.LastName,
		&ticket.Buyer.Email,
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

	return &ticket, nil
}

func collectTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, *ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (p *PostgresTicketRepository) RunInTx(ctx context.Context, fn func(tx domain.TicketTx) error) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return fn(&postgresTicketTx{tx: tx})
	})
}

func (p *PostgresTicketRepository) GetAll(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := p.db.Query(ctx, selectTickets+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}

	return collectTickets(rows)
}

func (p *PostgresTicketRepository) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	ticket, err := scanTicket(p.db.QueryRow(ctx, selectTickets+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return ticket, nil
}

func (p *PostgresTicketRepository) GetByUserId(ctx context.Context, userID int) ([]domain.Ticket, error) {
	rows, err := p.db.Query(ctx, selectTickets+` WHERE t.user_id = $1 ORDER BY t.id`, userID)
	if err != nil {
		return nil, err
	}

	return collectTickets(rows)
}

func (p *PostgresTicketRepository) GetByShowtimeId(ctx context.Context, showtimeID int) ([]domain.Ticket, error) {
	rows, err := p.db.Query(ctx, selectTickets+` WHERE t.showtime_id = $1 ORDER BY t.id`, showtimeID)
	if err != nil {
		return nil, err
	}

	return collectTickets(rows)
}

type postgresTicketTx struct {
	tx pgx.Tx
}

func (t *postgresTicketTx) ReserveSeat(ctx context.Context, req domain.PurchaseRequest) (int, error) {
	query := `SELECT message, ticket_id FROM reserve_seat($1, $2, $3, $4)`

	var (
		message  string
		ticketID *int
	)

	err := t.tx.QueryRow(ctx, query, req.BuyerID, req.ShowtimeID, req.Row, req.SeatNumber).Scan(&message, &ticketID)
	if err != nil {
		// unknown buyer
		if hasPgErrorCode(err, pgerrcode.ForeignKeyViolation) {
			return 0, domain.ErrInvalidReference
		}

		return 0, err
	}

	if !domain.IsReservationSuccess(message) || ticketID == nil {
		return 0, &domain.ReservationRejectedError{Message: message}
	}

	return *ticketID, nil
}

func (t *postgresTicketTx) ShowtimeRoomId(ctx context.Context, showtimeID int) (int, error) {
	var roomID int

	err := t.tx.QueryRow(ctx, `SELECT room_id FROM showtimes WHERE id = $1`, showtimeID).Scan(&roomID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRecordNotFound
		}

		return 0, err
	}

	return roomID, nil
}

func (t *postgresTicketTx) FindPurchased(ctx context.Context, req domain.PurchaseRequest, roomID int) (*domain.Ticket, error) {
	query := selectTickets + `
		WHERE t.user_id = $1
			AND t.showtime_id = $2
			AND se.room_id = $3
			AND se.seat_row = $4
			AND se.seat_number = $5
	`

	ticket, err := scanTicket(t.tx.QueryRow(ctx, query, req.BuyerID, req.ShowtimeID, roomID, req.Row, req.SeatNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return ticket, nil
}
