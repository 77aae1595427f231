package app

import (
	"net/http"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

func (app *Application) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateRoomHandlerJSONRequestBody

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

	room, err := app.roomService.CreateRoom(r.Context(), input.Name, input.Capacity)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toRoomResponse(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.roomService.ListRooms(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toResponses(rooms, toRoomResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRoomHandler(w http.ResponseWriter, r *http.Request, roomID int) {
	if roomID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	room, err := app.roomService.GetRoom(r.Context(), roomID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toRoomResponse(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateRoomHandler(w http.ResponseWriter, r *http.Request, roomID int) {
	if roomID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	var input api.UpdateRoomHandlerJSONRequestBody

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

	room, err := app.roomService.UpdateRoom(r.Context(), roomID, input.Name, input.Capacity)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toRoomResponse(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRoomHandler(w http.ResponseWriter, r *http.Request, roomID int) {
	if roomID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	err := app.roomService.DeleteRoom(r.Context(), roomID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) ListSeatsOfRoomHandler(w http.ResponseWriter, r *http.Request, roomID int) {
	if roomID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	seats, err := app.seatService.ListSeatsByRoom(r.Context(), roomID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toResponses(seats, toSeatResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toRoomResponse(room domain.Room) api.RoomResponse {
	return api.RoomResponse{
		Id:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
	}
}
