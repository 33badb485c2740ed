package coupons_get

import (
	"encoding/json"
	"net/http"

	"tiffin/pkg/logger"
)

type couponDTO struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	MinOrder      float64 `json:"min_order"`
	MaxDiscount   float64 `json:"max_discount,omitempty"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	coupons := h.service.List(r.Context())

	response := make([]couponDTO, 0, len(coupons))
	for _, coupon := range coupons {
		response = append(response, couponDTO{
			Name:          coupon.Name,
			Description:   coupon.Description,
			DiscountType:  string(coupon.DiscountType),
			DiscountValue: coupon.DiscountValue,
			MinOrder:      coupon.MinOrder,
			MaxDiscount:   coupon.MaxDiscount,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
