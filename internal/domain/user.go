package domain

// User is the buyer of a ticket. Accounts are managed by the identity service;
// this package only reads them.
type User struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}
