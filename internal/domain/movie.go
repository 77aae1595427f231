package domain

// Movie is owned by the catalogue service. Only the fields shown on a ticket
// are loaded here.
type Movie struct {
	ID          int
	Title       string
	Description string
	Duration    int
	PosterUrl   string
}
