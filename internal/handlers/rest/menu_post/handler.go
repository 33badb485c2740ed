package menu_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin/internal/entities"
	"tiffin/internal/service/menu"
	"tiffin/pkg/logger"
)

type menuUpsertRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type menuUpsertResponse struct {
	ID string `json:"id"`
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
	var request menuUpsertRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	available := true
	if request.Available != nil {
		available = *request.Available
	}

	err = h.service.Upsert(r.Context(), entities.MenuItem{
		ID:          request.ID,
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		ImageURL:    request.ImageURL,
		Available:   available,
	})
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrInvalidMenuItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := menuUpsertResponse{
		ID: request.ID,
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
