package mocks

import (
	"context"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockTicketRepo runs RunInTx callbacks against Tx and reports the callback's
// error, unless an error is configured for RunInTx itself.
type MockTicketRepo struct {
	mock.Mock
	domain.TicketRepository
	Tx *MockTicketTx
}

func (m *MockTicketRepo) RunInTx(ctx context.Context, fn func(tx domain.TicketTx) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.Tx)
}

func (m *MockTicketRepo) GetAll(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetByUserId(ctx context.Context, userID int) ([]domain.Ticket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepo) GetByShowtimeId(ctx context.Context, showtimeID int) ([]domain.Ticket, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

type MockTicketTx struct {
	mock.Mock
}

func (m *MockTicketTx) ReserveSeat(ctx context.Context, req domain.PurchaseRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketTx) ShowtimeRoomId(ctx context.Context, showtimeID int) (int, error) {
	args := m.Called(ctx, showtimeID)
	return args.Int(0), args.Error(1)
}

func (m *MockTicketTx) FindPurchased(ctx context.Context, req domain.PurchaseRequest, roomID int) (*domain.Ticket, error) {
	args := m.Called(ctx, req, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}
