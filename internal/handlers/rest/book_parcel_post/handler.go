package book_parcel_post

import (
	"encoding/json"
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "book_parcel_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	id, err := h.service.BookParcel(r.Context(), ToDomainModify(&parcelCreateDTO))
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("parcel booked", logger.NewField("parcel_id", id))

	presenter.JSON(w, h.log, http.StatusCreated, dto.ParcelCreateResponse{
		Message:  "Parcel booked successfully",
		ParcelId: id,
	})
}
