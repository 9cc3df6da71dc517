package my_reviews_get

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
	handlerLog := log.With(logger.NewField("handler", "my_reviews_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryPersonID, err := presenter.PathID(r, "deliveryManId")
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	reviews, err := h.service.GetReviewsByDeliveryPerson(r.Context(), deliveryPersonID)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.ReviewsToDTO(reviews))
}
