package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/seatlock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubLocker struct {
	AcquireFunc func(ctx context.Context, seats []seatlock.SeatKey) (seatlock.Release, error)

	mu       sync.Mutex
	released int
}

func (l *stubLocker) Acquire(ctx context.Context, seats []seatlock.SeatKey) (seatlock.Release, error) {
	release, err := l.AcquireFunc(ctx, seats)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		l.mu.Lock()
		l.released++
		l.mu.Unlock()

		if release != nil {
			return release(ctx)
		}

		return nil
	}, nil
}

func (l *stubLocker) Released() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.released
}

// memoryLocker holds seats in a map the way RedisLocker holds keys: all seats
// of a call or none, released only by the owner.
type memoryLocker struct {
	mu     sync.Mutex
	holds  map[seatlock.SeatKey]string
	nextID int
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{holds: make(map[seatlock.SeatKey]string)}
}

func (l *memoryLocker) Acquire(ctx context.Context, seats []seatlock.SeatKey) (seatlock.Release, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, seat := range seats {
		if _, ok := l.holds[seat]; ok {
			return nil, &seatlock.HeldError{Index: i, Seat: seat}
		}
	}

	l.nextID++
	owner := fmt.Sprintf("purchase-%d", l.nextID)

	for _, seat := range seats {
		l.holds[seat] = owner
	}

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		for _, seat := range seats {
			if l.holds[seat] == owner {
				delete(l.holds, seat)
			}
		}

		return nil
	}, nil
}

func (l *memoryLocker) hold(seat seatlock.SeatKey, owner string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.holds[seat] = owner
}

func (l *memoryLocker) owner(seat seatlock.SeatKey) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.holds[seat]
}

type seatRef struct {
	showtimeID int
	row        string
	seatNumber int
}

// fakeTicketStore mimics the reservation primitive in memory: a seat of a
// showtime is claimed by the first transaction that reserves it and the claim
// disappears when that transaction rolls back.
type fakeTicketStore struct {
	domain.TicketRepository

	mu            sync.Mutex
	showtimeRooms map[int]int
	seats         map[seatRef]bool
	sold          map[seatRef]domain.Ticket
	nextID        int
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{
		showtimeRooms: make(map[int]int),
		seats:         make(map[seatRef]bool),
		sold:          make(map[seatRef]domain.Ticket),
	}
}

// addShowtime registers a showtime playing in a room with the given rows.
func (f *fakeTicketStore) addShowtime(showtimeID, roomID int, rows ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.showtimeRooms[showtimeID] = roomID

	for _, row := range rows {
		for n := 1; n <= domain.SeatsPerRow; n++ {
			f.seats[seatRef{showtimeID, row, n}] = true
		}
	}
}

func (f *fakeTicketStore) soldCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.sold)
}

func (f *fakeTicketStore) RunInTx(ctx context.Context, fn func(tx domain.TicketTx) error) error {
	tx := &fakeTicketTx{store: f}

	err := fn(tx)
	if err != nil {
		f.mu.Lock()
		for _, ref := range tx.claimed {
			delete(f.sold, ref)
		}
		f.mu.Unlock()

		return err
	}

	return nil
}

type fakeTicketTx struct {
	store   *fakeTicketStore
	claimed []seatRef
}

func (t *fakeTicketTx) ReserveSeat(ctx context.Context, req domain.PurchaseRequest) (int, error) {
	f := t.store

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.showtimeRooms[req.ShowtimeID]; !ok {
		return 0, &domain.ReservationRejectedError{Message: "showtime not found"}
	}

	ref := seatRef{req.ShowtimeID, req.Row, req.SeatNumber}

	if !f.seats[ref] {
		return 0, &domain.ReservationRejectedError{Message: "seat not found for showtime"}
	}

	if _, ok := f.sold[ref]; ok {
		return 0, &domain.ReservationRejectedError{Message: "seat already sold for showtime"}
	}

	f.nextID++
	f.sold[ref] = domain.Ticket{
		ID:       f.nextID,
		Buyer:    domain.User{ID: req.BuyerID},
		Showtime: domain.Showtime{ID: req.ShowtimeID, Room: domain.Room{ID: f.showtimeRooms[req.ShowtimeID]}},
		Seat: domain.Seat{
			Room:       domain.Room{ID: f.showtimeRooms[req.ShowtimeID]},
			Row:        req.Row,
			SeatNumber: req.SeatNumber,
		},
	}
	t.claimed = append(t.claimed, ref)

	return f.nextID, nil
}

func (t *fakeTicketTx) ShowtimeRoomId(ctx context.Context, showtimeID int) (int, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	roomID, ok := t.store.showtimeRooms[showtimeID]
	if !ok {
		return 0, domain.ErrRecordNotFound
	}

	return roomID, nil
}

func (t *fakeTicketTx) FindPurchased(ctx context.Context, req domain.PurchaseRequest, roomID int) (*domain.Ticket, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	ticket, ok := t.store.sold[seatRef{req.ShowtimeID, req.Row, req.SeatNumber}]
	if !ok || ticket.Buyer.ID != req.BuyerID || ticket.Seat.Room.ID != roomID {
		return nil, domain.ErrRecordNotFound
	}

	return &ticket, nil
}

func seatName(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}
