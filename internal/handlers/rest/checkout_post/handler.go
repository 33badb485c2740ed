package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/order"
	"tiffin/pkg/logger"
)

type checkoutItemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}

type checkoutRequest struct {
	Items         []checkoutItemDTO `json:"items"`
	TotalAmount   float64           `json:"total_amount"`
	PaymentMethod string            `json:"payment_method,omitempty"`
}

type checkoutResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
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
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var request checkoutRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, entities.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}

	receipt, err := h.service.Checkout(r.Context(), owner, entities.OrderCheckout{
		Items:         items,
		TotalAmount:   request.TotalAmount,
		PaymentMethod: entities.PaymentMethodType(request.PaymentMethod),
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrInvalidItem),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrAmountMismatch),
			errors.Is(err, order.ErrInvalidPaymentMethod):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, order.ErrPaymentDeclined):
			http.Error(w, order.ErrPaymentDeclined.Error(), http.StatusPaymentRequired)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := checkoutResponse{
		OrderID: receipt.OrderID,
		Status:  receipt.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
