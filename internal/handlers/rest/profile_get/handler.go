package profile_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/address"
	"tiffin/pkg/logger"
)

type defaultAddressDTO struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

type profileResponse struct {
	User           string             `json:"user"`
	DefaultAddress *defaultAddressDTO `json:"default_address,omitempty"`
}

type Handler struct {
	log            handlerLogger
	addressService AddressService
}

func New(log handlerLogger, addressService AddressService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		addressService: addressService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	response := profileResponse{
		User: owner,
	}

	defaultAddress, err := h.addressService.GetDefault(r.Context(), owner)
	switch {
	case err == nil:
		response.DefaultAddress = &defaultAddressDTO{
			ID:          defaultAddress.ID,
			Label:       defaultAddress.Label,
			AddressLine: defaultAddress.AddressLine,
			City:        defaultAddress.City,
			State:       defaultAddress.State,
			Pincode:     defaultAddress.Pincode,
		}
	case errors.Is(err, address.ErrAddressNotFound):
		// адрес по умолчанию не обязателен
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
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
