package address_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/address"
	"tiffin/pkg/logger"
)

type addressCreateRequest struct {
	Label       string `json:"label"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"is_default"`
}

type addressCreateResponse struct {
	ID        string `json:"id"`
	IsDefault bool   `json:"is_default"`
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

	var request addressCreateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), owner, entities.Address{
		Label:       request.Label,
		AddressLine: request.AddressLine,
		City:        request.City,
		State:       request.State,
		Pincode:     request.Pincode,
		IsDefault:   request.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, address.ErrMissingRequiredFields):
			http.Error(w, address.ErrMissingRequiredFields.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := addressCreateResponse{
		ID:        created.ID,
		IsDefault: created.IsDefault,
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
