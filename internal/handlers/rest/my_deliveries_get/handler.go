package my_deliveries_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/presenter"
	"parcel-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "my_deliveries_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP принимает в пути либо id курьера, либо его email.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idOrEmail := mux.Vars(r)["idOrEmail"]

	var (
		parcels []entities.Parcel
		err     error
	)
	if id, parseErr := strconv.ParseInt(idOrEmail, 10, 64); parseErr == nil {
		parcels, err = h.service.ListAssignments(r.Context(), id)
	} else {
		parcels, err = h.service.ListAssignmentsByEmail(r.Context(), idOrEmail)
	}
	if err != nil {
		presenter.Error(w, h.log, err)
		return
	}

	presenter.JSON(w, h.log, http.StatusOK, presenter.ParcelsToDTO(parcels))
}
