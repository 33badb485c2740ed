package reviews_get

import (
	"encoding/json"
	"net/http"
	"time"

	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/pkg/logger"
)

type reviewDTO struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	OrderID   string    `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
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

	reviews, err := h.service.ListForOwner(r.Context(), owner)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	response := make([]reviewDTO, 0, len(reviews))
	for _, reviewEntity := range reviews {
		response = append(response, reviewDTO{
			ID:        reviewEntity.ID,
			Rating:    reviewEntity.Rating,
			Comment:   reviewEntity.Comment,
			OrderID:   reviewEntity.OrderID,
			CreatedAt: reviewEntity.CreatedAt,
		})
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
