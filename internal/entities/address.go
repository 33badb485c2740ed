package entities

import "time"

type Address struct {
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

type AddressModify struct {
	ID          *string
	Label       *string
	AddressLine *string
	City        *string
	State       *string
	Pincode     *string
	IsDefault   *bool
}
