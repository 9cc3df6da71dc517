//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=promote_user_put_test
package promote_user_put

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
	PromoteUser(ctx context.Context, userID int64, rawRole string) (*entities.User, error)
}
