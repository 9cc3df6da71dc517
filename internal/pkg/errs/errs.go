// Package errs содержит категории ошибок, общие для всех сервисов.
// Конкретные ошибки объявляются в errors.go сервисов и оборачивают одну из категорий,
// обработчики сопоставляют категорию со статусом ответа через errors.Is.
package errs

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrIllegalState      = errors.New("illegal state")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrConflict          = errors.New("conflict")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
