package domain

import "time"

// Horse belongs to a customer and is the subject of fixed bookings
type Horse struct {
	ID         int64
	CustomerID int64
	Name       string
	Breed      *string
	BirthYear  *int
	Notes      *string
	CreatedAt  time.Time
}
