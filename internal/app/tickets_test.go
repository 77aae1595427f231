package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TicketsTestSuite struct {
	suite.Suite
	app   *Application
	repos *testRepos
}

func (s *TicketsTestSuite) SetupTest() {
	s.repos = newTestRepos()
	s.app = newTestApplication(s.repos)
}

func TestTicketsSuite(t *testing.T) {
	suite.Run(t, new(TicketsTestSuite))
}

func purchased(id int, req domain.PurchaseRequest) *domain.Ticket {
	return &domain.Ticket{
		ID:       id,
		Buyer:    domain.User{ID: req.BuyerID},
		Showtime: domain.Showtime{ID: req.ShowtimeID, Room: domain.Room{ID: 1}},
		Seat: domain.Seat{
			Room:       domain.Room{ID: 1},
			Row:        req.Row,
			SeatNumber: req.SeatNumber,
		},
		PurchasedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
	}
}

func (s *TicketsTestSuite) TestPurchaseTicketHandler() {
	req := domain.PurchaseRequest{BuyerID: 2, ShowtimeID: 4, Row: "B", SeatNumber: 3}

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail with missing buyer",
			body:           api.PurchaseTicketRequest{ShowtimeId: 4, Row: "B", SeatNumber: 3},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "should fail with invalid row",
			body:           api.PurchaseTicketRequest{BuyerId: 2, ShowtimeId: 4, Row: "7", SeatNumber: 3},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrSeatRow,
		},
		{
			name:           "should fail with seat number out of range",
			body:           api.PurchaseTicketRequest{BuyerId: 2, ShowtimeId: 4, Row: "B", SeatNumber: 0},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: domain.ErrInvalidSeatNumber.Error(),
		},
		{
			name: "should conflict for sold seat",
			body: api.PurchaseTicketRequest{BuyerId: 2, ShowtimeId: 4, Row: "b", SeatNumber: 3},
			setupMock: func() {
				s.repos.tickets.On("RunInTx", mock.Anything).Return(nil)
				s.repos.tickets.Tx.On("ReserveSeat", mock.Anything, req).
					Return(0, &domain.ReservationRejectedError{Message: "Seat is already reserved"})
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "Seat is already reserved",
		},
		{
			name: "should return service unavailable on timeout",
			body: api.PurchaseTicketRequest{BuyerId: 2, ShowtimeId: 4, Row: "B", SeatNumber: 3},
			setupMock: func() {
				s.repos.tickets.On("RunInTx", mock.Anything).Return(context.DeadlineExceeded)
			},
			wantStatus:     http.StatusServiceUnavailable,
			wantErrMessage: ErrPurchaseTimeout,
		},
		{
			name: "should purchase ticket",
			body: api.PurchaseTicketRequest{BuyerId: 2, ShowtimeId: 4, Row: " b ", SeatNumber: 3},
			setupMock: func() {
				s.repos.tickets.On("RunInTx", mock.Anything).Return(nil)
				s.repos.tickets.Tx.On("ReserveSeat", mock.Anything, req).Return(11, nil)
				s.repos.tickets.Tx.On("ShowtimeRoomId", mock.Anything, 4).Return(1, nil)
				s.repos.tickets.Tx.On("FindPurchased", mock.Anything, req, 1).Return(purchased(11, req), nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.repos.tickets.AssertExpectations(s.T())
			defer s.repos.tickets.Tx.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/tickets", tt.body)

			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var response api.TicketResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
				s.Equal(11, response.Id)
				s.Equal("B", response.Seat.Row)
				s.Equal(3, response.Seat.SeatNumber)
				s.Equal(2, response.Buyer.Id)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *TicketsTestSuite) TestPurchaseTicketsHandler() {
	first := domain.PurchaseRequest{BuyerID: 2, ShowtimeID: 4, Row: "A", SeatNumber: 1}
	second := domain.PurchaseRequest{BuyerID: 2, ShowtimeID: 4, Row: "A", SeatNumber: 2}

	body := []api.PurchaseTicketRequest{
		{BuyerId: 2, ShowtimeId: 4, Row: "A", SeatNumber: 1},
		{BuyerId: 2, ShowtimeId: 4, Row: "A", SeatNumber: 2},
	}

	s.Run("should fail with empty batch", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodPost, "/tickets/bulk", "[]")
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusBadRequest, w.Code)
		checkErrorResponse(s.T(), w, struct {
			wantStatus     int
			wantErrMessage string
		}{
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: domain.ErrEmptyPurchase.Error(),
		})
	})

	s.Run("should fail with invalid item", func() {
		s.SetupTest()

		w, r := executeRequest(s.T(), http.MethodPost, "/tickets/bulk", []api.PurchaseTicketRequest{
			{BuyerId: 2, ShowtimeId: 4, Row: "A", SeatNumber: 1},
			{BuyerId: 2, ShowtimeId: 4, SeatNumber: 2},
		})
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("should report the failing request", func() {
		s.SetupTest()

		s.repos.tickets.On("RunInTx", mock.Anything).Return(nil)
		s.repos.tickets.Tx.On("ReserveSeat", mock.Anything, first).Return(21, nil)
		s.repos.tickets.Tx.On("ShowtimeRoomId", mock.Anything, 4).Return(1, nil)
		s.repos.tickets.Tx.On("FindPurchased", mock.Anything, first, 1).Return(purchased(21, first), nil)
		s.repos.tickets.Tx.On("ReserveSeat", mock.Anything, second).
			Return(0, &domain.ReservationRejectedError{Message: "Seat is already reserved"})

		w, r := executeRequest(s.T(), http.MethodPost, "/tickets/bulk", body)
		s.app.Routes().ServeHTTP(w, r)

		s.Require().Equal(http.StatusConflict, w.Code)

		var response api.BulkPurchaseErrorResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
		s.Equal(1, response.Index)
		s.Equal("A", response.Row)
		s.Equal(2, response.SeatNumber)
		s.Contains(response.Message, "Seat is already reserved")
	})

	s.Run("should purchase all tickets", func() {
		s.SetupTest()

		s.repos.tickets.On("RunInTx", mock.Anything).Return(nil)
		s.repos.tickets.Tx.On("ReserveSeat", mock.Anything, first).Return(21, nil)
		s.repos.tickets.Tx.On("ReserveSeat", mock.Anything, second).Return(22, nil)
		s.repos.tickets.Tx.On("ShowtimeRoomId", mock.Anything, 4).Return(1, nil)
		s.repos.tickets.Tx.On("FindPurchased", mock.Anything, first, 1).Return(purchased(21, first), nil)
		s.repos.tickets.Tx.On("FindPurchased", mock.Anything, second, 1).Return(purchased(22, second), nil)

		w, r := executeRequest(s.T(), http.MethodPost, "/tickets/bulk", body)
		s.app.Routes().ServeHTTP(w, r)

		s.Require().Equal(http.StatusCreated, w.Code)

		var response []api.TicketResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
		s.Require().Len(response, 2)
		s.Equal(21, response[0].Id)
		s.Equal(22, response[1].Id)
	})
}

func (s *TicketsTestSuite) TestGetTicketHandler() {
	s.repos.tickets.On("GetById", mock.Anything, 8).Return(nil, domain.ErrRecordNotFound)

	w, r := executeRequest(s.T(), http.MethodGet, "/tickets/8", nil)
	s.app.Routes().ServeHTTP(w, r)

	s.Equal(http.StatusNotFound, w.Code)
	checkErrorResponse(s.T(), w, struct {
		wantStatus     int
		wantErrMessage string
	}{
		wantStatus:     http.StatusNotFound,
		wantErrMessage: domain.ErrTicketNotFound.Error(),
	})
}

func (s *TicketsTestSuite) TestListTicketsOfUserHandler() {
	req := domain.PurchaseRequest{BuyerID: 2, ShowtimeID: 4, Row: "A", SeatNumber: 1}
	s.repos.tickets.On("GetByUserId", mock.Anything, 2).Return([]domain.Ticket{*purchased(1, req)}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/users/2/tickets", nil)
	s.app.Routes().ServeHTTP(w, r)

	s.Require().Equal(http.StatusOK, w.Code)

	var response []api.TicketResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
	s.Len(response, 1)
}
