package my_parcels_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "my_parcels_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	parcels, err := h.service.GetParcelsByOwner(r.Context(), email)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	// пустой список - не ошибка
	presenter.JSON(w, h.log, http.StatusOK, presenter.ParcelsToDTO(parcels))
}
