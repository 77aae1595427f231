package service

import (
	"context"
	"testing"
	"time"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowtimeService(t *testing.T) {
	input := domain.ShowtimeInput{
		MovieID:   1,
		RoomID:    2,
		StartTime: time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC),
		Format:    "IMAX",
		Price:     decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
	}

	t.Run("create surfaces unknown references", func(t *testing.T) {
		repo := new(mocks.MockShowtimeRepo)
		repo.On("Create", mock.Anything, input).Return(nil, domain.ErrInvalidReference)

		_, err := NewShowtimeService(discardLogger(), repo).CreateShowtime(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrInvalidReference)
		repo.AssertExpectations(t)
	})

	t.Run("create returns the scheduled showtime", func(t *testing.T) {
		want := &domain.Showtime{ID: 3, Movie: domain.Movie{ID: 1}, Room: domain.Room{ID: 2}, StartTime: input.StartTime, Format: "IMAX", Price: input.Price}

		repo := new(mocks.MockShowtimeRepo)
		repo.On("Create", mock.Anything, input).Return(want, nil)

		got, err := NewShowtimeService(discardLogger(), repo).CreateShowtime(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("get maps missing showtime", func(t *testing.T) {
		repo := new(mocks.MockShowtimeRepo)
		repo.On("GetById", mock.Anything, 9).Return(nil, domain.ErrRecordNotFound)

		_, err := NewShowtimeService(discardLogger(), repo).GetShowtime(context.Background(), 9)

		assert.ErrorIs(t, err, domain.ErrShowtimeNotFound)
	})

	t.Run("update maps missing showtime", func(t *testing.T) {
		repo := new(mocks.MockShowtimeRepo)
		repo.On("Update", mock.Anything, 9, input).Return(nil, domain.ErrRecordNotFound)

		_, err := NewShowtimeService(discardLogger(), repo).UpdateShowtime(context.Background(), 9, input)

		assert.ErrorIs(t, err, domain.ErrShowtimeNotFound)
	})

	t.Run("list by movie fails when the movie has no showtimes", func(t *testing.T) {
		repo := new(mocks.MockShowtimeRepo)
		repo.On("GetByMovieId", mock.Anything, 1).Return([]domain.Showtime{}, nil)

		_, err := NewShowtimeService(discardLogger(), repo).ListShowtimesByMovie(context.Background(), 1)

		assert.ErrorIs(t, err, domain.ErrShowtimeNotFound)
	})

	t.Run("list by movie returns showtimes", func(t *testing.T) {
		showtimes := []domain.Showtime{{ID: 1}, {ID: 2}}

		repo := new(mocks.MockShowtimeRepo)
		repo.On("GetByMovieId", mock.Anything, 1).Return(showtimes, nil)

		got, err := NewShowtimeService(discardLogger(), repo).ListShowtimesByMovie(context.Background(), 1)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("delete", func(t *testing.T) {
		tests := []struct {
			name    string
			repoErr error
			wantErr error
		}{
			{name: "deleted"},
			{name: "missing", repoErr: domain.ErrRecordNotFound, wantErr: domain.ErrShowtimeNotFound},
			{name: "has tickets", repoErr: domain.ErrShowtimeHasTickets, wantErr: domain.ErrShowtimeHasTickets},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(mocks.MockShowtimeRepo)
				repo.On("Delete", mock.Anything, 4).Return(tt.repoErr)

				err := NewShowtimeService(discardLogger(), repo).DeleteShowtime(context.Background(), 4)

				if tt.wantErr == nil {
					assert.NoError(t, err)
					return
				}

				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}
