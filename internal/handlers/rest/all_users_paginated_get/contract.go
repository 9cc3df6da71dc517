//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=all_users_paginated_get_test
package all_users_paginated_get

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
	GetUsersPage(ctx context.Context, page int) (*entities.UserPage, error)
}
