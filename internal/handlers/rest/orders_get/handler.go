package orders_get

import (
	"encoding/json"
	"net/http"
	"time"

	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
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

type listResponse struct {
	Count  int        `json:"count"`
	Orders []orderDTO `json:"orders"`
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

	orders, err := h.service.ListOrders(r.Context(), owner)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	dtos := make([]orderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, toDTO(&orders[i]))
	}

	response := listResponse{
		Count:  len(dtos),
		Orders: dtos,
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

func toDTO(orderEntity *entities.Order) orderDTO {
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

	return orderDTO{
		OrderID:       orderEntity.OrderID,
		Items:         items,
		TotalAmount:   orderEntity.TotalAmount,
		PaymentMethod: string(orderEntity.PaymentMethod),
		Status:        orderEntity.Status.String(),
		CancelReason:  orderEntity.CancelReason,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
	}
}
