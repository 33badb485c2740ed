package coupon

import (
	"context"
	"fmt"
	"math"
	"strings"

	"tiffin/internal/entities"
)

// Купоны статичный справочник, БД и кеш им не нужны.
var catalog = []entities.Coupon{
	{
		Name:          "WELCOME10",
		Description:   "Get 10% off on your first order",
		DiscountType:  entities.DiscountPercentage,
		DiscountValue: 10,
		MinOrder:      100,
		MaxDiscount:   50,
	},
	{
		Name:          "FLAT50",
		Description:   "Flat 50 off on orders above 200",
		DiscountType:  entities.DiscountFlat,
		DiscountValue: 50,
		MinOrder:      200,
		MaxDiscount:   50,
	},
	{
		Name:          "SAVE20",
		Description:   "Save 20% on orders above 300",
		DiscountType:  entities.DiscountPercentage,
		DiscountValue: 20,
		MinOrder:      300,
		MaxDiscount:   100,
	},
	{
		Name:          "BIGSALE",
		Description:   "Mega discount! 25% off on orders above 500",
		DiscountType:  entities.DiscountPercentage,
		DiscountValue: 25,
		MinOrder:      500,
		MaxDiscount:   150,
	},
}

type Coupons struct{}

func New() *Coupons {
	return &Coupons{}
}

func (s *Coupons) List(_ context.Context) []entities.Coupon {
	coupons := make([]entities.Coupon, len(catalog))
	copy(coupons, catalog)
	return coupons
}

// Validate применяет купон к сумме заказа и возвращает расчет скидки.
func (s *Coupons) Validate(_ context.Context, name string, amount float64) (*entities.CouponApplication, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	coupon, ok := find(name)
	if !ok {
		return nil, ErrUnknownCoupon
	}
	if amount < coupon.MinOrder {
		return nil, fmt.Errorf("%w: minimum order is %.2f", ErrMinOrderNotMet, coupon.MinOrder)
	}

	var discount float64
	switch coupon.DiscountType {
	case entities.DiscountPercentage:
		discount = amount * coupon.DiscountValue / 100
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	case entities.DiscountFlat:
		discount = coupon.DiscountValue
	}
	if discount > amount {
		discount = amount
	}

	discount = roundMoney(discount)
	return &entities.CouponApplication{
		CouponName:     coupon.Name,
		Description:    coupon.Description,
		DiscountAmount: discount,
		FinalAmount:    roundMoney(amount - discount),
		OriginalAmount: amount,
	}, nil
}

func find(name string) (entities.Coupon, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, coupon := range catalog {
		if coupon.Name == normalized {
			return coupon, true
		}
	}
	return entities.Coupon{}, false
}

func roundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}
