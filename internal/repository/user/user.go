package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	service "parcel-service/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "email", "name", "profile_image", "role", "created_at", "updated_at"}

const returningUser = "RETURNING id, email, name, profile_image, role, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (email, name, profile_image, role)
		VALUES ($1, $2, COALESCE($3::text, ''), $4)
		` + returningUser

	userModel, err := scanUser(r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Email,
		userModifyModel.Name,
		userModifyModel.ProfileImage,
		userModifyModel.Role,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("%w: %s", service.ErrUserAlreadyExists, *userModifyEntity.Email)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, service.ErrInvalidRole
		}
		return nil, repository.Unexpected("unexpected user repository create error", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, "getbyid")
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, "getbyemail")
}

func (r *Repository) GetByRole(ctx context.Context, role entities.UserRoleType) ([]entities.User, error) {
	builder := qb.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"role": role.String()}).
		OrderBy("id")

	return r.selectUsers(ctx, builder, "getbyrole")
}

func (r *Repository) GetPage(ctx context.Context, limit uint64, offset uint64) ([]entities.User, error) {
	builder := qb.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		Limit(limit).
		Offset(offset)

	return r.selectUsers(ctx, builder, "getpage")
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, repository.Unexpected("unexpected user repository count error", err)
	}
	return count, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.ProfileImage != nil {
		builder = builder.Set("profile_image", userModifyModel.ProfileImage)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"email": userModifyModel.Email}).
		Suffix(returningUser)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository updateprofile error: %w", err)
	}

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", service.ErrUserNotFound, *userModifyEntity.Email)
		}
		return nil, repository.Unexpected("unexpected user repository updateprofile error", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int64, role entities.UserRoleType) (*entities.User, error) {
	query := `UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE id = $1
		` + returningUser

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, id, role.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", service.ErrUserNotFound, id)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, service.ErrInvalidRole
		}
		return nil, repository.Unexpected("unexpected user repository updaterole error", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq, op string) (*entities.User, error) {
	query, args, err := qb.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository %s error: %w", op, err)
	}

	userModel, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrUserNotFound
		}
		return nil, repository.Unexpected("unexpected user repository "+op+" error", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) selectUsers(ctx context.Context, builder sq.SelectBuilder, op string) ([]entities.User, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository %s error: %w", op, err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unexpected("unexpected user repository "+op+" error", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		userModel, err := scanUser(rows)
		if err != nil {
			return nil, repository.Unexpected("unexpected user repository "+op+" error", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, repository.Unexpected("unexpected user repository "+op+" error", err)
	}

	return ToDomainList(userModels), nil
}

func scanUser(row pgx.Row) (UserDB, error) {
	var userModel UserDB
	err := row.Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.Name,
		&userModel.ProfileImage,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	return userModel, err
}
