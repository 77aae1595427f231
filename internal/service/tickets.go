package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/seatlock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	DefaultPurchaseTimeout = 5 * time.Second
	DefaultHoldWait        = time.Second

	holdRetryInterval = 25 * time.Millisecond

	meterName = "github.com/metinatakli/cinema-ticketing/internal/service"
)

type TicketService struct {
	logger   *slog.Logger
	tickets  domain.TicketRepository
	locker   seatlock.Locker
	timeout  time.Duration
	holdWait time.Duration

	purchased metric.Int64Counter
	rejected  metric.Int64Counter
	contended metric.Int64Counter
}

type TicketServiceOption func(*TicketService)

// WithSeatLocker puts a seat hold in front of every purchase transaction.
func WithSeatLocker(locker seatlock.Locker) TicketServiceOption {
	return func(s *TicketService) {
		if locker != nil {
			s.locker = locker
		}
	}
}

// WithHoldWait bounds how long a purchase waits for seats held by another
// purchase before it goes on without a hold.
func WithHoldWait(d time.Duration) TicketServiceOption {
	return func(s *TicketService) {
		if d > 0 {
			s.holdWait = d
		}
	}
}

// WithPurchaseTimeout bounds each purchase transaction.
func WithPurchaseTimeout(d time.Duration) TicketServiceOption {
	return func(s *TicketService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func NewTicketService(logger *slog.Logger, tickets domain.TicketRepository, opts ...TicketServiceOption) *TicketService {
	s := &TicketService{
		logger:   logger,
		tickets:  tickets,
		locker:   seatlock.NoopLocker{},
		timeout:  DefaultPurchaseTimeout,
		holdWait: DefaultHoldWait,
	}

	for _, opt := range opts {
		opt(s)
	}

	meter := otel.Meter(meterName)

	var err error

	s.purchased, err = meter.Int64Counter("tickets.purchased", metric.WithDescription("Number of tickets issued"))
	if err != nil {
		s.purchased = noop.Int64Counter{}
	}

	s.rejected, err = meter.Int64Counter("tickets.rejected", metric.WithDescription("Number of purchase requests refused because the seat was unavailable"))
	if err != nil {
		s.rejected = noop.Int64Counter{}
	}

	s.contended, err = meter.Int64Counter("tickets.hold.contended", metric.WithDescription("Number of purchases that went on without a seat hold because the seats stayed held"))
	if err != nil {
		s.contended = noop.Int64Counter{}
	}

	return s
}

// PurchaseTicket sells one seat of a showtime to a buyer. Exactly one of many
// concurrent purchases of the same seat succeeds, the others fail with an
// error matching ErrSeatUnavailable.
func (s *TicketService) PurchaseTicket(ctx context.Context, req domain.PurchaseRequest) (*domain.Ticket, error) {
	req, err := normalizePurchase(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	release := s.hold(ctx, []domain.PurchaseRequest{req})
	defer s.release(ctx, release)

	var ticket *domain.Ticket

	err = s.tickets.RunInTx(ctx, func(tx domain.TicketTx) error {
		var err error
		ticket, err = s.purchase(ctx, tx, req)
		return err
	})
	if err != nil {
		var rejectedErr *domain.ReservationRejectedError
		if errors.As(err, &rejectedErr) {
			s.rejected.Add(ctx, 1)
			return nil, &domain.SeatUnavailableError{Message: rejectedErr.Message}
		}

		return nil, purchaseError(ctx, err)
	}

	s.purchased.Add(ctx, 1)

	s.logger.Info("ticket purchased",
		"ticket_id", ticket.ID,
		"showtime_id", req.ShowtimeID,
		"row", req.Row,
		"seat_number", req.SeatNumber)

	return ticket, nil
}

// PurchaseTickets sells every requested seat or none of them. Requests are
// reserved in order inside one transaction and the first failure aborts the
// batch with a *domain.BulkPurchaseError.
func (s *TicketService) PurchaseTickets(ctx context.Context, reqs []domain.PurchaseRequest) ([]domain.Ticket, error) {
	if len(reqs) == 0 {
		return nil, domain.ErrEmptyPurchase
	}

	normalized := make([]domain.PurchaseRequest, len(reqs))

	for i, req := range reqs {
		n, err := normalizePurchase(req)
		if err != nil {
			return nil, &domain.BulkPurchaseError{
				Index:      i,
				Row:        req.Row,
				SeatNumber: req.SeatNumber,
				Message:    err.Error(),
				Err:        err,
			}
		}

		normalized[i] = n
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	release := s.hold(ctx, normalized)
	defer s.release(ctx, release)

	tickets := make([]domain.Ticket, 0, len(normalized))

	err := s.tickets.RunInTx(ctx, func(tx domain.TicketTx) error {
		for i, req := range normalized {
			ticket, err := s.purchase(ctx, tx, req)
			if err != nil {
				return bulkPurchaseError(ctx, i, req, err)
			}

			tickets = append(tickets, *ticket)
		}

		return nil
	})
	if err != nil {
		var bulkErr *domain.BulkPurchaseError
		if errors.As(err, &bulkErr) {
			if errors.Is(bulkErr, domain.ErrSeatUnavailable) {
				s.rejected.Add(ctx, 1)
			}

			s.logger.Info("bulk purchase aborted",
				"index", bulkErr.Index,
				"row", bulkErr.Row,
				"seat_number", bulkErr.SeatNumber,
				"reason", bulkErr.Message)

			return nil, err
		}

		return nil, purchaseError(ctx, err)
	}

	s.purchased.Add(ctx, int64(len(tickets)))

	s.logger.Info("bulk purchase completed", "tickets", len(tickets))

	return tickets, nil
}

// purchase runs the reservation primitive and reads the issued ticket back in
// the same transaction.
func (s *TicketService) purchase(ctx context.Context, tx domain.TicketTx, req domain.PurchaseRequest) (*domain.Ticket, error) {
	ticketID, err := tx.ReserveSeat(ctx, req)
	if err != nil {
		return nil, err
	}

	roomID, err := tx.ShowtimeRoomId(ctx, req.ShowtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, s.inconsistency(req, ticketID, "showtime room")
		}

		return nil, err
	}

	ticket, err := tx.FindPurchased(ctx, req, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, s.inconsistency(req, ticketID, "ticket")
		}

		return nil, err
	}

	if ticket.ID != ticketID {
		return nil, s.inconsistency(req, ticketID, "ticket id")
	}

	return ticket, nil
}

func (s *TicketService) inconsistency(req domain.PurchaseRequest, ticketID int, missing string) error {
	s.logger.Error("purchased ticket could not be read back",
		"missing", missing,
		"ticket_id", ticketID,
		"buyer_id", req.BuyerID,
		"showtime_id", req.ShowtimeID,
		"row", req.Row,
		"seat_number", req.SeatNumber)

	return domain.ErrPurchaseInconsistency
}

// hold takes the seats of a purchase in the locker. Seats held by another
// purchase are retried until the hold wait runs out. The purchase then goes on
// without a hold, as it does when the locker fails, and the reservation
// primitive alone decides who gets the seat.
func (s *TicketService) hold(ctx context.Context, reqs []domain.PurchaseRequest) seatlock.Release {
	seats := make([]seatlock.SeatKey, len(reqs))
	for i, req := range reqs {
		seats[i] = seatlock.SeatKey{
			ShowtimeID: req.ShowtimeID,
			Row:        req.Row,
			SeatNumber: req.SeatNumber,
		}
	}

	deadline := time.NewTimer(s.holdWait)
	defer deadline.Stop()

	for {
		release, err := s.locker.Acquire(ctx, seats)
		if err == nil {
			return release
		}

		var heldErr *seatlock.HeldError
		if !errors.As(err, &heldErr) {
			s.logger.Warn("seat hold unavailable, purchasing without it", "error", err)
			return noRelease
		}

		select {
		case <-time.After(holdRetryInterval):
		case <-deadline.C:
			s.contended.Add(ctx, 1)
			s.logger.Info("seat still held by another purchase, purchasing without a hold",
				"showtime_id", heldErr.Seat.ShowtimeID,
				"row", heldErr.Seat.Row,
				"seat_number", heldErr.Seat.SeatNumber)
			return noRelease
		case <-ctx.Done():
			return noRelease
		}
	}
}

func (s *TicketService) release(ctx context.Context, release seatlock.Release) {
	err := release(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.Warn("seat hold not released, it expires with its ttl", "error", err)
	}
}

func noRelease(context.Context) error {
	return nil
}

func (s *TicketService) GetAllTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.GetAll(ctx)
}

func (s *TicketService) GetTicketByID(ctx context.Context, id int) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetById(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrTicketNotFound
		}

		return nil, err
	}

	return ticket, nil
}

func (s *TicketService) GetTicketsByUser(ctx context.Context, userID int) ([]domain.Ticket, error) {
	return s.tickets.GetByUserId(ctx, userID)
}

func (s *TicketService) GetTicketsByShowtime(ctx context.Context, showtimeID int) ([]domain.Ticket, error) {
	return s.tickets.GetByShowtimeId(ctx, showtimeID)
}

func normalizePurchase(req domain.PurchaseRequest) (domain.PurchaseRequest, error) {
	if !domain.ValidSeatNumber(req.SeatNumber) {
		return req, domain.ErrInvalidSeatNumber
	}

	req.Row = domain.NormalizeRow(req.Row)

	return req, nil
}

func bulkPurchaseError(ctx context.Context, index int, req domain.PurchaseRequest, err error) *domain.BulkPurchaseError {
	var rejectedErr *domain.ReservationRejectedError
	if errors.As(err, &rejectedErr) {
		return &domain.BulkPurchaseError{
			Index:      index,
			Row:        req.Row,
			SeatNumber: req.SeatNumber,
			Message:    rejectedErr.Message,
			Err:        &domain.SeatUnavailableError{Message: rejectedErr.Message},
		}
	}

	err = purchaseError(ctx, err)

	return &domain.BulkPurchaseError{
		Index:      index,
		Row:        req.Row,
		SeatNumber: req.SeatNumber,
		Message:    err.Error(),
		Err:        err,
	}
}

// purchaseError tags failures caused by the purchase deadline so callers can
// tell them apart from refused seats.
func purchaseError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrPurchaseTimeout, err)
	}

	return err
}
