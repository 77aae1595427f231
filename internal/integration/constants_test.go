package integration_test

const (
	TestUserId        = 1
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "john@example.com"

	TestMovieId       = 1
	TestMovieTitle    = "The Go Story"
	TestMovieDuration = 120

	TestRoomId       = 1
	TestRoomName     = "Sala 1"
	TestRoomCapacity = 20

	TestShowtimeId = 1
)
