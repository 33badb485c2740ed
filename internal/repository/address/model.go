package address

import "time"

type AddressDB struct {
	ID          string
	Owner       string
	Label       string
	AddressLine string
	City        string
	State       string
	Pincode     string
	IsDefault   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
