package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

func (app *Application) PurchaseTicketHandler(w http.ResponseWriter, r *http.Request) {
	var input api.PurchaseTicketHandlerJSONRequestBody

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

	ticket, err := app.ticketService.PurchaseTicket(r.Context(), toPurchaseRequest(input))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTicketResponse(*ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// PurchaseTicketsHandler accepts a JSON array of purchase requests and issues
// all tickets or none.
func (app *Application) PurchaseTicketsHandler(w http.ResponseWriter, r *http.Request) {
	var input api.PurchaseTicketsHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reqs := make([]domain.PurchaseRequest, len(input))

	for i, item := range input {
		err = app.validator.Struct(item)
		if err != nil {
			app.failedValidationResponse(w, r, err)
			return
		}

		reqs[i] = toPurchaseRequest(item)
	}

	tickets, err := app.ticketService.PurchaseTickets(r.Context(), reqs)
	if err != nil {
		var bulkErr *domain.BulkPurchaseError
		if errors.As(err, &bulkErr) && errors.Is(err, domain.ErrSeatUnavailable) {
			app.bulkPurchaseFailedResponse(w, r, bulkErr)
			return
		}

		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toResponses(tickets, toTicketResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) bulkPurchaseFailedResponse(w http.ResponseWriter, r *http.Request, bulkErr *domain.BulkPurchaseError) {
	resp := api.BulkPurchaseErrorResponse{
		Message:    bulkErr.Error(),
		RequestId:  middleware.GetReqID(r.Context()),
		Timestamp:  time.Now(),
		Index:      bulkErr.Index,
		Row:        bulkErr.Row,
		SeatNumber: bulkErr.SeatNumber,
	}

	err := app.writeJSON(w, http.StatusConflict, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTicketsHandler(w http.ResponseWriter, r *http.Request) {
	tickets, err := app.ticketService.GetAllTickets(r.Context())
	app.ticketsResponse(w, r, tickets, err)
}

func (app *Application) GetTicketHandler(w http.ResponseWriter, r *http.Request, ticketID int) {
	if ticketID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	ticket, err := app.ticketService.GetTicketByID(r.Context(), ticketID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(*ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTicketsOfUserHandler(w http.ResponseWriter, r *http.Request, userID int) {
	if userID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	tickets, err := app.ticketService.GetTicketsByUser(r.Context(), userID)
	app.ticketsResponse(w, r, tickets, err)
}

func (app *Application) ListTicketsOfShowtimeHandler(w http.ResponseWriter, r *http.Request, showtimeID int) {
	if showtimeID < 1 {
		app.badRequestResponse(w, r, errInvalidID)
		return
	}

	tickets, err := app.ticketService.GetTicketsByShowtime(r.Context(), showtimeID)
	app.ticketsResponse(w, r, tickets, err)
}

func (app *Application) ticketsResponse(w http.ResponseWriter, r *http.Request, tickets []domain.Ticket, err error) {
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toResponses(tickets, toTicketResponse), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPurchaseRequest(input api.PurchaseTicketRequest) domain.PurchaseRequest {
	return domain.PurchaseRequest{
		BuyerID:    input.BuyerId,
		ShowtimeID: input.ShowtimeId,
		Row:        input.Row,
		SeatNumber: input.SeatNumber,
	}
}

func toTicketResponse(ticket domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:          ticket.ID,
		PurchasedAt: ticket.PurchasedAt,
		Buyer: api.UserResponse{
			Id:        ticket.Buyer.ID,
			FirstName: ticket.Buyer.FirstName,
			LastName:  ticket.Buyer.LastName,
			Email:     ticket.Buyer.Email,
		},
		Showtime: toShowtimeResponse(ticket.Showtime),
		Seat:     toSeatResponse(ticket.Seat),
	}
}
