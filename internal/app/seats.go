package app

import (
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/service"
)

func (app *Application) CreateSeatHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateSeatHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seat, err := app.seatService.CreateSeat(r.Context(), input.RoomId, input.Row, input.SeatNumber)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toSeatResponse(*seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListSeatsHandler(w http.ResponseWriter, r *http.Request) {
	seats, err := app.seatService.ListSeats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toResponses(seats, toSeatResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatHandler(w http.ResponseWriter, r *http.Request, seatID int) {
	if seatID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	seat, err := app.seatService.GetSeat(r.Context(), seatID)
	app.seatResponse(w, r, seat, err)
}

func (app *Application) UpdateSeatHandler(w http.ResponseWriter, r *http.Request, seatID int) {
	if seatID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	var input api.UpdateSeatHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seat, err := app.seatService.UpdateSeat(r.Context(), seatID, service.SeatUpdate{
		RoomID:     input.RoomId,
		Row:        input.Row,
		SeatNumber: input.SeatNumber,
		Occupied:   input.IsOccupied,
	})
	app.seatResponse(w, r, seat, err)
}

func (app *Application) OccupySeatHandler(w http.ResponseWriter, r *http.Request, seatID int) {
	if seatID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	seat, err := app.seatService.OccupySeat(r.Context(), seatID)
	app.seatResponse(w, r, seat, err)
}

func (app *Application) FreeSeatHandler(w http.ResponseWriter, r *http.Request, seatID int) {
	if seatID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	seat, err := app.seatService.FreeSeat(r.Context(), seatID)
	app.seatResponse(w, r, seat, err)
}

func (app *Application) DeleteSeatHandler(w http.ResponseWriter, r *http.Request, seatID int) {
	if seatID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	err := app.seatService.DeleteSeat(r.Context(), seatID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) seatResponse(w http.ResponseWriter, r *http.Request, seat *domain.Seat, err error) {
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatResponse(*seat), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatResponse(seat domain.Seat) api.SeatResponse {
	return api.SeatResponse{
		Id:         seat.ID,
		Row:        seat.Row,
		SeatNumber: seat.SeatNumber,
		IsOccupied: seat.Occupied,
		Room:       toRoomResponse(seat.Room),
	}
}
