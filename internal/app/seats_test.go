package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
	"github.com/metinatakli/cinema-ticketing/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeatsTestSuite struct {
	suite.Suite
	app   *Application
	repos *testRepos
}

func (s *SeatsTestSuite) SetupTest() {
	s.repos = newTestRepos()
	s.app = newTestApplication(s.repos)
}

func TestSeatsSuite(t *testing.T) {
	suite.Run(t, new(SeatsTestSuite))
}

func (s *SeatsTestSuite) TestCreateSeatHandler() {
	room := &domain.Room{ID: 1, Name: "Sala 1", Capacity: 20}

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.SeatResponse
	}{
		{
			name:           "should fail with row that is not a letter",
			body:           api.CreateSeatRequest{RoomId: 1, Row: "AA", SeatNumber: 1},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrSeatRow,
		},
		{
			name:           "should fail with seat number out of range",
			body:           api.CreateSeatRequest{RoomId: 1, Row: "A", SeatNumber: 11},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: domain.ErrInvalidSeatNumber.Error(),
		},
		{
			name: "should fail for unknown room",
			body: api.CreateSeatRequest{RoomId: 1, Row: "A", SeatNumber: 1},
			setupMock: func() {
				s.repos.rooms.On("GetById", mock.Anything, 1).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: domain.ErrRoomNotFound.Error(),
		},
		{
			name: "should list allowed rows when row is outside the room",
			body: api.CreateSeatRequest{RoomId: 1, Row: "c", SeatNumber: 1},
			setupMock: func() {
				s.repos.rooms.On("GetById", mock.Anything, 1).Return(room, nil)
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `row "C" is not allowed, must be one of: A, B`,
		},
		{
			name: "should conflict with existing seat",
			body: api.CreateSeatRequest{RoomId: 1, Row: "a", SeatNumber: 1},
			setupMock: func() {
				s.repos.rooms.On("GetById", mock.Anything, 1).Return(room, nil)
				s.repos.seats.On("Exists", mock.Anything, 1, "A", 1).Return(true, nil)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrSeatAlreadyExists.Error(),
		},
		{
			name: "should create seat",
			body: api.CreateSeatRequest{RoomId: 1, Row: "b", SeatNumber: 9},
			setupMock: func() {
				s.repos.rooms.On("GetById", mock.Anything, 1).Return(room, nil)
				s.repos.seats.On("Exists", mock.Anything, 1, "B", 9).Return(false, nil)
				s.repos.seats.On("Create", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Seat).ID = 21
					}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.SeatResponse{
				Id:         21,
				Row:        "B",
				SeatNumber: 9,
				Room:       api.RoomResponse{Id: 1, Name: "Sala 1", Capacity: 20},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.repos.rooms.AssertExpectations(s.T())
			defer s.repos.seats.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/seats", tt.body)

			s.app.Routes().ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.SeatResponse
				s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
				s.Equal(*tt.wantResponse, response)
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

func (s *SeatsTestSuite) TestOccupyAndFreeSeatHandlers() {
	occupied := &domain.Seat{ID: 4, Room: domain.Room{ID: 1}, Row: "A", SeatNumber: 4, Occupied: true}
	free := &domain.Seat{ID: 4, Room: domain.Room{ID: 1}, Row: "A", SeatNumber: 4}

	s.repos.seats.On("SetOccupied", mock.Anything, 4, true).Return(occupied, nil)
	s.repos.seats.On("SetOccupied", mock.Anything, 4, false).Return(free, nil)
	s.repos.seats.On("SetOccupied", mock.Anything, 5, true).Return(nil, domain.ErrRecordNotFound)

	tests := []struct {
		url          string
		wantStatus   int
		wantOccupied bool
	}{
		{url: "/seats/4/occupy", wantStatus: http.StatusOK, wantOccupied: true},
		{url: "/seats/4/occupy", wantStatus: http.StatusOK, wantOccupied: true},
		{url: "/seats/4/free", wantStatus: http.StatusOK},
		{url: "/seats/5/occupy", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		w, r := executeRequest(s.T(), http.MethodPatch, tt.url, nil)
		s.app.Routes().ServeHTTP(w, r)

		s.Require().Equal(tt.wantStatus, w.Code, tt.url)

		if tt.wantStatus == http.StatusOK {
			var response api.SeatResponse
			s.Require().NoError(json.NewDecoder(w.Body).Decode(&response))
			s.Equal(tt.wantOccupied, response.IsOccupied)
		}
	}
}

func (s *SeatsTestSuite) TestDeleteSeatHandler_SoldSeat() {
	s.repos.seats.On("Delete", mock.Anything, 3).Return(domain.ErrSeatsInUse)

	w, r := executeRequest(s.T(), http.MethodDelete, "/seats/3", nil)
	s.app.Routes().ServeHTTP(w, r)

	s.Equal(http.StatusConflict, w.Code)
}
