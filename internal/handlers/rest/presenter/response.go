package presenter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/pkg/errs"
	"parcel-service/pkg/logger"
)

var ErrInvalidPathID = errors.New("invalid path id")

type responseLogger interface {
	Error(msg string, fields ...logger.Field)
}

// StatusFromError переводит категорию ошибки сервиса в HTTP статус.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrIllegalState),
		errors.Is(err, errs.ErrIllegalTransition):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error пишет ответ с ошибкой. Текст внутренних ошибок наружу не отдается.
func Error(w http.ResponseWriter, log responseLogger, err error) {
	ErrorWithStatus(w, log, StatusFromError(err), err)
}

func ErrorWithStatus(w http.ResponseWriter, log responseLogger, status int, err error) {
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
		message = http.StatusText(status)
	}

	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

func JSON(w http.ResponseWriter, log responseLogger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, ErrInvalidPathID
	}
	return id, nil
}
