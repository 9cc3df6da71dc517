//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"parcel-service/internal/pkg/config"

	parcelRepo "parcel-service/internal/repository/parcel"
	rankingRepo "parcel-service/internal/repository/ranking"
	rankingCache "parcel-service/internal/repository/ranking_cache"
	reviewRepo "parcel-service/internal/repository/review"
	statsRepo "parcel-service/internal/repository/stats"
	userRepo "parcel-service/internal/repository/user"
	assignmentService "parcel-service/internal/service/assignment"
	parcelService "parcel-service/internal/service/parcel"
	rankingService "parcel-service/internal/service/ranking"
	reviewService "parcel-service/internal/service/review"
	statsService "parcel-service/internal/service/stats"
	userService "parcel-service/internal/service/user"

	"parcel-service/internal/handlers/tasks/ranking_refresh"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/tx"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideParcelRepository,
	provideUserRepository,
	provideReviewRepository,
	provideStatsRepository,
	provideRankingRepository,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		provideRankingCache,

		provideServiceParcel,
		provideServiceAssignment,
		provideServiceUser,
		provideServiceReview,
		provideServiceStats,
		provideServiceRanking,

		provideRankingRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceReview), new(*reviewService.Review)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),
		wire.Bind(new(ServiceRanking), new(*rankingService.Ranking)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(assignmentService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(assignmentService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(reviewService.Repository), new(*reviewRepo.Repository)),
		wire.Bind(new(reviewService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(statsService.Repository), new(*statsRepo.Repository)),
		wire.Bind(new(rankingService.Repository), new(*rankingRepo.Repository)),
		wire.Bind(new(rankingService.Cache), new(*rankingCache.Repository)),

		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reviewService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statsService.TxManager), new(*tx.Manager)),

		wire.Bind(new(ranking_refresh.Service), new(*rankingService.Ranking)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-parcel-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideParcelRepository,
		provideServiceParcel,

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
