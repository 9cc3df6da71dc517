package cancel_parcel_put

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
	handlerLog := log.With(logger.NewField("handler", "cancel_parcel_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := presenter.PathID(r, "id")
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	canceled, err := h.service.CancelParcel(r.Context(), id)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("parcel canceled", logger.NewField("parcel_id", id))

	presenter.JSON(w, h.log, http.StatusOK, presenter.ParcelToDTO(canceled))
}
