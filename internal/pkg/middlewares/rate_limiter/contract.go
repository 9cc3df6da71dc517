package rate_limiter

import "parcel-service/pkg/logger"

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test

type Limiter interface {
	Allow(client string) bool
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
