package user

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"parcel-service/internal/entities"
)

type User struct {
	repository Repository
	txManager  TxManager
	pageSize   int
}

func New(repository Repository, txManager TxManager, pageSize int) *User {
	return &User{
		repository: repository,
		txManager:  txManager,
		pageSize:   pageSize,
	}
}

func (u *User) Register(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if err := validateIdentity(userModify); err != nil {
		return nil, err
	}

	role, err := registrationRole(userModify.Role)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(*userModify.Email)
	userModify.ID = nil
	userModify.Email = &email
	userModify.Role = &role

	created, err := u.repository.Create(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// SocialLogin возвращает существующего пользователя или создает покупателя.
func (u *User) SocialLogin(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if err := validateIdentity(userModify); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(*userModify.Email)
	existing, err := u.repository.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	role := entities.DefaultRole
	userModify.ID = nil
	userModify.Email = &email
	userModify.Role = &role

	created, err := u.repository.Create(ctx, userModify)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, ErrUserAlreadyExists) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// параллельный вход успел создать пользователя
	existing, err = u.repository.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return existing, nil
}

func (u *User) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	user, err := u.repository.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (u *User) UpdateProfile(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Email == nil || !isValidEmail(*userModify.Email) {
		return nil, ErrInvalidEmail
	}
	if userModify.Name == nil && userModify.ProfileImage == nil {
		return nil, ErrNoFieldsToUpdate
	}
	if userModify.Name != nil && isBlank(userModify.Name) {
		return nil, ErrMissingRequiredFields
	}

	// роль меняется только через повышение
	email := strings.TrimSpace(*userModify.Email)
	userModify.ID = nil
	userModify.Email = &email
	userModify.Role = nil

	updated, err := u.repository.UpdateProfile(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// GetUsersPage читает страницу и общее количество в одном снимке.
func (u *User) GetUsersPage(ctx context.Context, page int) (*entities.UserPage, error) {
	limit := uint64(u.pageSize)
	// OFFSET в postgres - bigint
	if page < 1 || uint64(page-1) > math.MaxInt64/limit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}

	result := entities.UserPage{Page: page}
	offset := uint64(page-1) * limit

	err := u.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		users, err := u.repository.GetPage(ctx, limit, offset)
		if err != nil {
			return fmt.Errorf("get users page: %w", err)
		}

		total, err := u.repository.Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}

		result.Users = users
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *User) GetDeliveryPersons(ctx context.Context) ([]entities.User, error) {
	users, err := u.repository.GetByRole(ctx, entities.RoleDeliveryPerson)
	if err != nil {
		return nil, fmt.Errorf("get delivery persons: %w", err)
	}
	return users, nil
}
