package address

import "errors"

var (
	ErrAddressNotFound       = errors.New("address not found")
	ErrMissingRequiredFields = errors.New("label, address_line, city, state and pincode are required")
	ErrEmptyModify           = errors.New("at least one field to update is required")
)
