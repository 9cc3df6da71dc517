package parcel_status_changed

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_status_changed_test

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateStatusByAssignee(ctx context.Context, id int64, assigneeID int64, newStatus entities.ParcelStatusType) (*entities.Parcel, error)
}
