// Package seatlock holds seats of a showtime for the duration of a purchase so
// that obviously contended requests are turned away before a database
// transaction is opened. The database stays the only authority on who owns a
// seat.
package seatlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSeatHeld = errors.New("seat already held")

// acquireSeatsScript replies -1 when it took every key, or the zero-based
// position of the first key that already exists.
var acquireSeatsScript = redis.NewScript(`
    -- KEYS = seat hold keys (e.g., seat_hold:12:A:3)
    -- ARGV = [owner token, ttl in milliseconds]

    for i=1, #KEYS do
        if redis.call("EXISTS", KEYS[i]) == 1 then
            return i - 1
        end
    end

    for i=1, #KEYS do
        redis.call("SET", KEYS[i], ARGV[1], "PX", ARGV[2])
    end

    return -1
`)

var releaseSeatsScript = redis.NewScript(`
    -- KEYS = seat hold keys
    -- ARGV = [owner token]

    local released = 0

    for i=1, #KEYS do
        if redis.call("GET", KEYS[i]) == ARGV[1] then
            released = released + redis.call("DEL", KEYS[i])
        end
    end

    return released
`)

type SeatKey struct {
	ShowtimeID int
	Row        string
	SeatNumber int
}

// Release gives up the seats taken by a successful Acquire. Holds that cannot
// be released expire with their TTL.
type Release func(ctx context.Context) error

type Locker interface {
	// Acquire holds every seat or none of them. A seat held by another
	// purchase is reported as *HeldError.
	Acquire(ctx context.Context, seats []SeatKey) (Release, error)
}

// HeldError reports the position, in the seats passed to Acquire, of the first
// seat that is already held.
type HeldError struct {
	Index int
	Seat  SeatKey
}

func (e *HeldError) Error() string {
	return fmt.Sprintf("%s: showtime %d, row %s, seat %d", ErrSeatHeld, e.Seat.ShowtimeID, e.Seat.Row, e.Seat.SeatNumber)
}

func (e *HeldError) Unwrap() error {
	return ErrSeatHeld
}

func HoldKey(seat SeatKey) string {
	return fmt.Sprintf("seat_hold:%d:%s:%d", seat.ShowtimeID, seat.Row, seat.SeatNumber)
}

type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisLocker(client redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, seats []SeatKey) (Release, error) {
	keys := make([]string, len(seats))
	for i, seat := range seats {
		keys[i] = HoldKey(seat)
	}

	token := uuid.NewString()

	index, err := acquireSeatsScript.Run(ctx, l.client, keys, token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return nil, err
	}

	if index >= 0 {
		if index >= len(seats) {
			return nil, fmt.Errorf("seat hold script reported position %d of %d seats", index, len(seats))
		}

		return nil, &HeldError{Index: index, Seat: seats[index]}
	}

	release := func(ctx context.Context) error {
		return releaseSeatsScript.Run(ctx, l.client, keys, token).Err()
	}

	return release, nil
}

type NoopLocker struct{}

func (NoopLocker) Acquire(context.Context, []SeatKey) (Release, error) {
	return func(context.Context) error { return nil }, nil
}
