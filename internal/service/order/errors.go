package order

import "errors"

var (
	ErrEmptyCart            = errors.New("order items cannot be empty")
	ErrInvalidItem          = errors.New("invalid order item")
	ErrInvalidAmount        = errors.New("invalid total amount")
	ErrAmountMismatch       = errors.New("total amount does not match items")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentDeclined      = errors.New("payment declined")

	ErrEmptyCancelReason = errors.New("cancel reason is required")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderNotFound     = errors.New("order not found")

	ErrOrderIDConflict = errors.New("order id already exists")
)
