package entities

import "time"

type Review struct {
	ID        int64
	Owner     string
	Rating    int
	Comment   string
	OrderID   string
	CreatedAt time.Time
}
