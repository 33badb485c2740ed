package order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/order"
	"tiffin/pkg/logger"
)

type cancelRequest struct {
	Reason string `json:"reason"`
}

type cancelResponse struct {
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

	orderID := mux.Vars(r)["order_id"]
	if orderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}

	var request cancelRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err = h.service.Cancel(r.Context(), orderID, owner, request.Reason)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCancelReason),
			errors.Is(err, order.ErrInvalidTransition):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			http.Error(w, order.ErrOrderNotFound.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := cancelResponse{
		OrderID: orderID,
		Status:  entities.OrderCancelled.String(),
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
