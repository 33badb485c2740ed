package entities

import "time"

type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Available   bool
	UpdatedAt   time.Time
}
