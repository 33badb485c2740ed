package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/order"
	"tiffin/pkg/logger"
)

type orderItemDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"image_url,omitempty"`
}

type orderDTO struct {
	OrderID       string         `json:"order_id"`
	Items         []orderItemDTO `json:"items"`
	TotalAmount   float64        `json:"total_amount"`
	PaymentMethod string         `json:"payment_method"`
	Status        string         `json:"status"`
	CancelReason  string         `json:"cancel_reason,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
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

	orderID := mux.Vars(r)["order_id"]
	if orderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), orderID, owner)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			http.Error(w, order.ErrOrderNotFound.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	items := make([]orderItemDTO, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, orderItemDTO{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
		})
	}

	response := orderDTO{
		OrderID:       orderEntity.OrderID,
		Items:         items,
		TotalAmount:   orderEntity.TotalAmount,
		PaymentMethod: string(orderEntity.PaymentMethod),
		Status:        orderEntity.Status.String(),
		CancelReason:  orderEntity.CancelReason,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
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
