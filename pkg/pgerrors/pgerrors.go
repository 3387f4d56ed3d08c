package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, которые обрабатываются явно
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
	NumericOutOfRange   = "22003"
)

// Code возвращает SQLSTATE ошибки драйвера или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation проверяет нарушение уникального ограничения
// constraint - имя ограничения (пустая строка - любое)
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != UniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// IsForeignKeyViolation проверяет нарушение внешнего ключа
func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

// IsValueRejected проверяет, что значение отклонено CHECK-ограничением
// или не помещается в числовой тип столбца
func IsValueRejected(err error) bool {
	switch Code(err) {
	case CheckViolation, NumericOutOfRange:
		return true
	}
	return false
}
