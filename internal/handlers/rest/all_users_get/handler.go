package all_users_get

import (
	"net/http"

	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

const firstPage = 1

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "all_users_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает первую страницу пользователей списком, без общего количества.
// Постраничный обход - /all-users-paginated.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	usersPage, err := h.service.GetUsersPage(r.Context(), firstPage)
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.UsersToDTO(usersPage.Users))
}
