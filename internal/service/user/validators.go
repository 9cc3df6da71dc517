package user

import (
	"fmt"
	"strings"

	"parcel-service/internal/entities"
)

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func validateIdentity(userModify entities.UserModify) error {
	if isBlank(userModify.Name) || isBlank(userModify.Email) {
		return ErrMissingRequiredFields
	}
	if !isValidEmail(*userModify.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// registrationRole возвращает роль для нового пользователя.
// Администратором через регистрацию стать нельзя.
func registrationRole(role *entities.UserRoleType) (entities.UserRoleType, error) {
	if role == nil || strings.TrimSpace(role.String()) == "" {
		return entities.DefaultRole, nil
	}

	parsed, ok := entities.ParseUserRole(role.String())
	if !ok || parsed == entities.RoleAdmin {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role.String())
	}
	return parsed, nil
}
