package review_post

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
	handlerLog := log.With(logger.NewField("handler", "review_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var reviewDTO dto.ReviewCreate
	err := json.NewDecoder(r.Body).Decode(&reviewDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	// курьера берем из посылки, клиент его не передает
	created, err := h.service.CreateReview(r.Context(), entities.ReviewModify{
		ParcelID:      &reviewDTO.ParcelId,
		ReviewerName:  reviewDTO.ReviewerName,
		ReviewerEmail: &reviewDTO.ReviewerEmail,
		ReviewerImage: reviewDTO.ReviewerImage,
		Rating:        &reviewDTO.Rating,
		Feedback:      reviewDTO.Feedback,
	})
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("review created",
		logger.NewField("parcel_id", created.ParcelID),
		logger.NewField("delivery_person_id", created.DeliveryPersonID),
	)

	presenter.JSON(w, h.log, http.StatusCreated, presenter.ReviewToDTO(created))
}
