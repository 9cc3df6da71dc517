package delivery_men_get

import (
	"net/http"

	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "delivery_men_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryPersons, err := h.service.GetDeliveryPersons(r.Context())
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.UsersToDTO(deliveryPersons))
}
