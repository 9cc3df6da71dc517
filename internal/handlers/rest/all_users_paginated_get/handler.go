package all_users_paginated_get

import (
	"net/http"
	"strconv"

	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

const defaultPage = 1

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "all_users_paginated_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := defaultPage
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			presenter.ErrorWithStatus(w, h.log, http.StatusBadRequest, err)
			return
		}
		page = parsed
	}

	usersPage, err := h.service.GetUsersPage(r.Context(), page)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.UsersPageToDTO(usersPage))
}
