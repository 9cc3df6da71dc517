package assignment

import (
	"strings"
	"time"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func isValidDeliveryDate(date time.Time) bool {
	return !date.IsZero()
}
