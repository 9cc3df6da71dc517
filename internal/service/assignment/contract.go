//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"parcel-service/internal/entities"
)

type ParcelRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetByAssignee(ctx context.Context, deliveryPersonID int64) ([]entities.Parcel, error)

	// Assign назначает pending посылку курьеру одним условным UPDATE.
	// Если посылка уже не pending или курьер потерял роль, возвращает ErrAssignmentConflict.
	Assign(ctx context.Context, assignment entities.ParcelAssignment) (*entities.Parcel, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateRole(ctx context.Context, id int64, role entities.UserRoleType) (*entities.User, error)
}
