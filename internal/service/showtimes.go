package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

type ShowtimeService struct {
	logger    *slog.Logger
	showtimes domain.ShowtimeRepository
}

func NewShowtimeService(logger *slog.Logger, showtimes domain.ShowtimeRepository) *ShowtimeService {
	return &ShowtimeService{
		logger:    logger,
		showtimes: showtimes,
	}
}

// CreateShowtime relies on the database for the movie and room references, an
// unknown one is reported as ErrInvalidReference.
func (s *ShowtimeService) CreateShowtime(ctx context.Context, input domain.ShowtimeInput) (*domain.Showtime, error) {
	showtime, err := s.showtimes.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("showtime scheduled", "showtime_id", showtime.ID, "room_id", showtime.Room.ID, "movie_id", showtime.Movie.ID)

	return showtime, nil
}

func (s *ShowtimeService) GetShowtime(ctx context.Context, id int) (*domain.Showtime, error) {
	showtime, err := s.showtimes.GetById(ctx, id)
	if err != nil {
		return nil, showtimeError(err)
	}

	return showtime, nil
}

func (s *ShowtimeService) ListShowtimes(ctx context.Context) ([]domain.Showtime, error) {
	return s.showtimes.GetAll(ctx)
}

func (s *ShowtimeService) ListShowtimesByMovie(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	showtimes, err := s.showtimes.GetByMovieId(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if len(showtimes) == 0 {
		return nil, domain.ErrShowtimeNotFound
	}

	return showtimes, nil
}

func (s *ShowtimeService) UpdateShowtime(ctx context.Context, id int, input domain.ShowtimeInput) (*domain.Showtime, error) {
	showtime, err := s.showtimes.Update(ctx, id, input)
	if err != nil {
		return nil, showtimeError(err)
	}

	return showtime, nil
}

func (s *ShowtimeService) DeleteShowtime(ctx context.Context, id int) error {
	return showtimeError(s.showtimes.Delete(ctx, id))
}

func showtimeError(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrShowtimeNotFound
	}

	return err
}
