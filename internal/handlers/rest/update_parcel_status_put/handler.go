package update_parcel_status_put

import (
	"encoding/json"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "update_parcel_status_put"))

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

	var statusUpdateDTO dto.ParcelStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	// нормализация старых написаний статуса происходит в сервисе
	updated, err := h.service.UpdateStatus(r.Context(), id, entities.ParcelStatusType(statusUpdateDTO.Status))
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("parcel status updated",
		logger.NewField("parcel_id", id),
		logger.NewField("status", updated.Status.String()),
	)

	presenter.JSON(w, h.log, http.StatusOK, presenter.ParcelToDTO(updated))
}
