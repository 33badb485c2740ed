package address_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tiffin/internal/pkg/middlewares/auth"
	"tiffin/internal/service/address"
)

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

	err := h.service.Delete(r.Context(), owner, id)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrAddressNotFound):
			http.Error(w, address.ErrAddressNotFound.Error(), http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
