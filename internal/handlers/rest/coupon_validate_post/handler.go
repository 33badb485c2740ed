package coupon_validate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin/internal/service/coupon"
	"tiffin/pkg/logger"
)

type validateRequest struct {
	Coupon string  `json:"coupon"`
	Amount float64 `json:"amount"`
}

type validateResponse struct {
	Coupon         string  `json:"coupon"`
	Description    string  `json:"description"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	OriginalAmount float64 `json:"original_amount"`
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
	var request validateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	application, err := h.service.Validate(r.Context(), request.Coupon, request.Amount)
	if err != nil {
		switch {
		case errors.Is(err, coupon.ErrUnknownCoupon):
			http.Error(w, coupon.ErrUnknownCoupon.Error(), http.StatusNotFound)
		case errors.Is(err, coupon.ErrInvalidAmount),
			errors.Is(err, coupon.ErrMinOrderNotMet):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := validateResponse{
		Coupon:         application.CouponName,
		Description:    application.Description,
		DiscountAmount: application.DiscountAmount,
		FinalAmount:    application.FinalAmount,
		OriginalAmount: application.OriginalAmount,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
