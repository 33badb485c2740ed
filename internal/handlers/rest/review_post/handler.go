package review_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/review"
	"tiffin/pkg/logger"
)

type reviewCreateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	OrderID string `json:"order_id,omitempty"`
}

type reviewCreateResponse struct {
	ID int64 `json:"id"`
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

	var request reviewCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.Submit(r.Context(), owner, entities.Review{
		Rating:  request.Rating,
		Comment: request.Comment,
		OrderID: request.OrderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating),
			errors.Is(err, review.ErrEmptyComment):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := reviewCreateResponse{
		ID: id,
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
