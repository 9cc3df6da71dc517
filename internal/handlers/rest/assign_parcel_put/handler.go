package assign_parcel_put

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
	handlerLog := log.With(logger.NewField("handler", "assign_parcel_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcelID, err := presenter.PathID(r, "parcelId")
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	var assignDTO dto.ParcelAssign
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	assigned, err := h.service.AssignParcel(r.Context(), entities.ParcelAssignment{
		ParcelID:                parcelID,
		DeliveryPersonID:        assignDTO.DeliveryManId,
		ApproximateDeliveryDate: assignDTO.ApproximateDeliveryDate,
	})
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("parcel assigned",
		logger.NewField("parcel_id", parcelID),
		logger.NewField("delivery_person_id", assignDTO.DeliveryManId),
	)

	presenter.JSON(w, h.log, http.StatusOK, presenter.ParcelToDTO(assigned))
}
