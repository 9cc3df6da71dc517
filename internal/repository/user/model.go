package user

import "time"

type UserDB struct {
	ID           int64
	Email        string
	Name         string
	ProfileImage string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserModifyDB struct {
	ID           *int64
	Email        *string
	Name         *string
	ProfileImage *string
	Role         *string
}
