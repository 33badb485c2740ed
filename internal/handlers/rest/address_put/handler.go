package address_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/address"
	"tiffin/pkg/logger"
)

type addressUpdateRequest struct {
	Label       *string `json:"label,omitempty"`
	AddressLine *string `json:"address_line,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Pincode     *string `json:"pincode,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

type addressUpdateResponse struct {
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

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	var request addressUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), owner, entities.AddressModify{
		ID:          pointer.To(id),
		Label:       request.Label,
		AddressLine: request.AddressLine,
		City:        request.City,
		State:       request.State,
		Pincode:     request.Pincode,
		IsDefault:   request.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, address.ErrEmptyModify):
			http.Error(w, address.ErrEmptyModify.Error(), http.StatusBadRequest)
		case errors.Is(err, address.ErrAddressNotFound):
			http.Error(w, address.ErrAddressNotFound.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	response := addressUpdateResponse{
		ID:        updated.ID,
		IsDefault: updated.IsDefault,
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
