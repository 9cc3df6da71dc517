package update_parcel_put

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
	handlerLog := log.With(logger.NewField("handler", "update_parcel_put"))

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

	var parcelUpdateDTO dto.ParcelUpdate
	err = json.NewDecoder(r.Body).Decode(&parcelUpdateDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	// статус и курьер в патч не входят
	parcelModify := entities.ParcelModify{
		ID:            &id,
		OwnerName:     parcelUpdateDTO.Name,
		OwnerEmail:    parcelUpdateDTO.Email,
		OwnerPhone:    parcelUpdateDTO.Phone,
		ReceiverName:  parcelUpdateDTO.ReceiverName,
		ReceiverPhone: parcelUpdateDTO.ReceiverPhone,
		Address:       parcelUpdateDTO.Address,
		Weight:        parcelUpdateDTO.Weight,
		RequestedDate: parcelUpdateDTO.RequestedDate,
	}

	updated, err := h.service.UpdateParcel(r.Context(), parcelModify)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.ParcelToDTO(updated))
}
