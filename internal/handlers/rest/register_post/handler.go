package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/internal/service/user"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "register_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.UserRegister
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
		return
	}

	userModify := entities.UserModify{
		Name:         &registerDTO.Name,
		Email:        &registerDTO.Email,
		ProfileImage: registerDTO.ProfileImage,
	}
	if registerDTO.UserType != nil {
		role := entities.UserRoleType(*registerDTO.UserType)
		userModify.Role = &role
	}

	created, err := h.service.Register(r.Context(), userModify)
	if err != nil {
		// существующий email клиенты ждут как 400
		if errors.Is(err, user.ErrUserAlreadyExists) {
			presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
			return
		}
		presenter.Error(w, h.log, err)
		return
	}

	h.log.Info("user registered",
		logger.NewField("user_id", created.ID),
		logger.NewField("role", created.Role.String()),
	)

	presenter.JSON(w, h.log, http.StatusOK, dto.MessageResponse{Message: "User registered successfully"})
}
