package social_login_post

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
	handlerLog := log.With(logger.NewField("handler", "social_login_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.SocialLogin
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	loggedIn, err := h.service.SocialLogin(r.Context(), entities.UserModify{
		Name:         &loginDTO.Name,
		Email:        &loginDTO.Email,
		ProfileImage: loginDTO.ProfileImage,
	})
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.UserToDTO(loggedIn))
}
