package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tiffin/internal/entities"
	"tiffin/internal/service/order"
	"tiffin/pkg/logger"
)

type statusRequest struct {
	Status string `json:"status"`
}

type statusResponse struct {
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
	orderID := mux.Vars(r)["order_id"]
	if orderID == "" {
		http.Error(w, "order_id is required", http.StatusBadRequest)
		return
	}

	var request statusRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	status := entities.OrderStatusType(request.Status)
	err = h.service.SetStatus(r.Context(), orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			http.Error(w, order.ErrInvalidStatus.Error(), http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			http.Error(w, order.ErrOrderNotFound.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := statusResponse{
		OrderID: orderID,
		Status:  status.String(),
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
