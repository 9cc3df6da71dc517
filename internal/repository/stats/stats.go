package stats

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountParcels(ctx context.Context) (int64, error) {
	return r.count(ctx, qb.Select("COUNT(*)").From("parcels"), "countparcels")
}

func (r *Repository) CountParcelsByStatus(ctx context.Context, status entities.ParcelStatusType) (int64, error) {
	return r.count(ctx, qb.Select("COUNT(*)").From("parcels").Where(sq.Eq{"status": status.String()}), "countparcelsbystatus")
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, qb.Select("COUNT(*)").From("users"), "countusers")
}

// GetBookingsByDate группирует посылки по дню бронирования в UTC.
func (r *Repository) GetBookingsByDate(ctx context.Context) ([]entities.DailyBookings, error) {
	query := `
	SELECT date_trunc('day', booking_date AT TIME ZONE 'UTC') AS day, COUNT(*)
	FROM parcels
	GROUP BY day
	ORDER BY day`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, repository.Unexpected("unexpected stats repository getbookingsbydate error", err)
	}
	defer rows.Close()

	result := make([]entities.DailyBookings, 0, 8)
	for rows.Next() {
		var bookingsModel DailyBookingsDB
		if err := rows.Scan(&bookingsModel.Day, &bookingsModel.Count); err != nil {
			return nil, repository.Unexpected("unexpected stats repository getbookingsbydate error", err)
		}
		result = append(result, entities.DailyBookings{
			Date:  bookingsModel.Day.UTC(),
			Count: bookingsModel.Count,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, repository.Unexpected("unexpected stats repository getbookingsbydate error", err)
	}

	return result, nil
}

func (r *Repository) count(ctx context.Context, builder sq.SelectBuilder, op string) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, repository.Unexpected("unexpected stats repository "+op+" error", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, repository.Unexpected("unexpected stats repository "+op+" error", err)
	}
	return count, nil
}
