package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	all_parcels_get "parcel-service/internal/handlers/rest/all_parcels_get"
	all_users_get "parcel-service/internal/handlers/rest/all_users_get"
	all_users_paginated_get "parcel-service/internal/handlers/rest/all_users_paginated_get"
	assign_parcel_put "parcel-service/internal/handlers/rest/assign_parcel_put"
	book_parcel_post "parcel-service/internal/handlers/rest/book_parcel_post"
	cancel_parcel_put "parcel-service/internal/handlers/rest/cancel_parcel_put"
	delivery_men_get "parcel-service/internal/handlers/rest/delivery_men_get"
	my_deliveries_get "parcel-service/internal/handlers/rest/my_deliveries_get"
	my_parcels_get "parcel-service/internal/handlers/rest/my_parcels_get"
	my_reviews_get "parcel-service/internal/handlers/rest/my_reviews_get"
	promote_user_put "parcel-service/internal/handlers/rest/promote_user_put"
	register_post "parcel-service/internal/handlers/rest/register_post"
	review_post "parcel-service/internal/handlers/rest/review_post"
	search_parcels_get "parcel-service/internal/handlers/rest/search_parcels_get"
	social_login_post "parcel-service/internal/handlers/rest/social_login_post"
	stats_get "parcel-service/internal/handlers/rest/stats_get"
	top_delivery_men_get "parcel-service/internal/handlers/rest/top_delivery_men_get"
	update_parcel_put "parcel-service/internal/handlers/rest/update_parcel_put"
	update_parcel_status_put "parcel-service/internal/handlers/rest/update_parcel_status_put"
	update_profile_put "parcel-service/internal/handlers/rest/update_profile_put"
	user_get "parcel-service/internal/handlers/rest/user_get"
	"parcel-service/internal/handlers/tasks/ranking_refresh"
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
	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceAssignment ServiceAssignment
	ServiceUser       ServiceUser
	ServiceReview     ServiceReview
	ServiceStats      ServiceStats
	ServiceRanking    ServiceRanking
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	book_parcel_post.Service
	update_parcel_put.Service
	cancel_parcel_put.Service
	update_parcel_status_put.Service
	search_parcels_get.Service
	all_parcels_get.Service
	my_parcels_get.Service
}

type ServiceAssignment interface {
	assign_parcel_put.Service
	my_deliveries_get.Service
	promote_user_put.Service
}

type ServiceUser interface {
	register_post.Service
	social_login_post.Service
	user_get.Service
	update_profile_put.Service
	all_users_get.Service
	all_users_paginated_get.Service
	delivery_men_get.Service
}

type ServiceReview interface {
	review_post.Service
	my_reviews_get.Service
}

type ServiceStats interface {
	stats_get.Service
}

type ServiceRanking interface {
	top_delivery_men_get.Service
}

type KafkaWorkerApp struct {
	ParcelService *parcelService.Parcel
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideReviewRepository(querier *querier.Querier) *reviewRepo.Repository {
	return reviewRepo.New(querier)
}

func provideStatsRepository(querier *querier.Querier) *statsRepo.Repository {
	return statsRepo.New(querier)
}

func provideRankingRepository(querier *querier.Querier) *rankingRepo.Repository {
	return rankingRepo.New(querier)
}

func provideRankingCache(client *goredis.Client, cfg *config.Config) *rankingCache.Repository {
	return rankingCache.New(client, cfg.Ranking.CacheTTL)
}

func provideServiceParcel(repository parcelService.Repository) *parcelService.Parcel {
	return parcelService.New(repository)
}

func provideServiceAssignment(
	parcelRepository assignmentService.ParcelRepository,
	userRepository assignmentService.UserRepository,
) *assignmentService.Assignment {
	return assignmentService.New(parcelRepository, userRepository)
}

func provideServiceUser(
	repository userService.Repository,
	txManager userService.TxManager,
	cfg *config.Config,
) *userService.User {
	return userService.New(repository, txManager, cfg.Users.PageSize)
}

func provideServiceReview(
	repository reviewService.Repository,
	parcelRepository reviewService.ParcelRepository,
	txManager reviewService.TxManager,
) *reviewService.Review {
	return reviewService.New(repository, parcelRepository, txManager)
}

func provideServiceStats(
	repository statsService.Repository,
	txManager statsService.TxManager,
) *statsService.Stats {
	return statsService.New(repository, txManager)
}

func provideServiceRanking(
	log logger.Logger,
	repository rankingService.Repository,
	cache rankingService.Cache,
	cfg *config.Config,
) *rankingService.Ranking {
	return rankingService.New(log, repository, cache, cfg.Ranking.TopN)
}

func provideRankingRefreshTask(
	log logger.Logger,
	service ranking_refresh.Service,
	cfg *config.Config,
) *ranking_refresh.RankingRefresh {
	return ranking_refresh.NewRankingRefresh(log, service, cfg.Tasks.RankingRefreshInterval)
}

func provideTaskList(
	rankingRefreshTask *ranking_refresh.RankingRefresh,
) []background.Task {
	return []background.Task{
		rankingRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
