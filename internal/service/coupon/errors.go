package coupon

import "errors"

var (
	ErrUnknownCoupon  = errors.New("coupon not found")
	ErrMinOrderNotMet = errors.New("order amount below coupon minimum")
	ErrInvalidAmount  = errors.New("order amount must be positive")
)
