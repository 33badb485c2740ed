package addresses_get

import (
	"encoding/json"
	"net/http"

	"tiffin/internal/entities"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/pkg/logger"
)

type addressDTO struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	IsDefault   bool   `json:"is_default"`
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

	addresses, err := h.service.List(r.Context(), owner)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	response := make([]addressDTO, 0, len(addresses))
	for i := range addresses {
		response = append(response, toDTO(&addresses[i]))
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

func toDTO(addressEntity *entities.Address) addressDTO {
	return addressDTO{
		ID:          addressEntity.ID,
		Label:       addressEntity.Label,
		AddressLine: addressEntity.AddressLine,
		City:        addressEntity.City,
		State:       addressEntity.State,
		Pincode:     addressEntity.Pincode,
		IsDefault:   addressEntity.IsDefault,
	}
}
