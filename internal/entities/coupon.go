package entities

type CouponDiscountType string

const (
	DiscountPercentage CouponDiscountType = "percentage"
	DiscountFlat       CouponDiscountType = "flat"
)

type Coupon struct {
	Name          string
	Description   string
	DiscountType  CouponDiscountType
	DiscountValue float64
	MinOrder      float64
	MaxDiscount   float64
}

// CouponApplication результат применения купона к сумме заказа.
type CouponApplication struct {
	CouponName     string
	Description    string
	DiscountAmount float64
	FinalAmount    float64
	OriginalAmount float64
}
