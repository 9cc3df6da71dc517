package entities

import (
	"strings"
	"time"
)

type User struct {
	ID           int64
	Email        string
	Name         string
	ProfileImage string
	Role         UserRoleType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRoleType string

const (
	RoleCustomer       UserRoleType = "customer"
	RoleDeliveryPerson UserRoleType = "delivery_person"
	RoleAdmin          UserRoleType = "admin"
)

const DefaultRole = RoleCustomer

func (r UserRoleType) String() string {
	return string(r)
}

// ParseUserRole приводит роль к каноническому виду, включая старые значения
// "User" и "DeliveryMen".
func ParseUserRole(raw string) (UserRoleType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	switch normalized {
	case "customer", "user":
		return RoleCustomer, true
	case "delivery_person", "deliverymen", "delivery_man", "deliveryman":
		return RoleDeliveryPerson, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

type UserModify struct {
	ID           *int64
	Email        *string
	Name         *string
	ProfileImage *string
	Role         *UserRoleType
}

type UserPage struct {
	Users []User
	Total int64
	Page  int
}
