package promote_user_put

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
	handlerLog := log.With(logger.NewField("handler", "promote_user_put"))

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

	var promoteDTO dto.UserPromote
	err = json.NewDecoder(r.Body).Decode(&promoteDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	promoted, err := h.service.PromoteUser(r.Context(), id, promoteDTO.Role)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("user role changed",
		logger.NewField("user_id", promoted.ID),
		logger.NewField("role", promoted.Role.String()),
	)

	presenter.JSON(w, h.log, http.StatusOK, presenter.UserToDTO(promoted))
}
