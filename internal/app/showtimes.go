package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

func (app *Application) readShowtimeInput(w http.ResponseWriter, r *http.Request) (*api.ShowtimeRequest, bool) {
	var input api.ShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return nil, false
	}

	if input.Price.Valid && input.Price.Decimal.IsNegative() {
		app.badRequestResponse(w, r, errors.New("price must not be negative"))
		return nil, false
	}

	return &input, true
}

func (app *Application) CreateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readShowtimeInput(w, r)
	if !ok {
		return
	}

	showtime, err := app.showtimeService.CreateShowtime(r.Context(), toShowtimeInput(*input))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShowtimesHandler(w http.ResponseWriter, r *http.Request) {
	showtimes, err := app.showtimeService.ListShowtimes(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toResponses(showtimes, toShowtimeResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	showtime, err := app.showtimeService.GetShowtime(r.Context(), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	input, ok := app.readShowtimeInput(w, r)
	if !ok {
		return
	}

	showtime, err := app.showtimeService.UpdateShowtime(r.Context(), showtimeID, toShowtimeInput(*input))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(*showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	err := app.showtimeService.DeleteShowtime(r.Context(), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) ListShowtimesOfMovieHandler(w http.ResponseWriter, r *http.Request, movieID int) {
	if movieID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	showtimes, err := app.showtimeService.ListShowtimesByMovie(r.Context(), movieID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toResponses(showtimes, toShowtimeResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimeInput(input api.ShowtimeRequest) domain.ShowtimeInput {
	return domain.ShowtimeInput{
		MovieID:   input.MovieId,
		RoomID:    input.RoomId,
		StartTime: input.StartTime,
		Format:    input.Format,
		Price:     input.Price,
	}
}

func toShowtimeResponse(showtime domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:        showtime.ID,
		StartTime: showtime.StartTime,
		Format:    showtime.Format,
		Price:     showtime.Price,
		Movie: api.MovieResponse{
			Id:          showtime.Movie.ID,
			Title:       showtime.Movie.Title,
			Description: showtime.Movie.Description,
			Duration:    showtime.Movie.Duration,
			PosterUrl:   showtime.Movie.PosterUrl,
		},
		Room: toRoomResponse(showtime.Room),
	}
}
