//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByRole(ctx context.Context, role entities.UserRoleType) ([]entities.User, error)
	GetPage(ctx context.Context, limit uint64, offset uint64) ([]entities.User, error)
	Count(ctx context.Context) (int64, error)

	// UpdateProfile меняет имя и аватар пользователя, найденного по email.
	UpdateProfile(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}

type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
