package domain

import (
	"fmt"
	"strings"
)

// FieldError ошибка валидации, привязанная к конкретному полю
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors упорядоченная коллекция ошибок валидации
// Проверки не прерываются на первой ошибке - собираются все
// применимые, чтобы пользователь исправил форму за один подход
type ValidationErrors struct {
	errors []FieldError
}

// Add добавляет ошибку поля в коллекцию
func (v *ValidationErrors) Add(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// HasErrors возвращает true, если коллекция непуста
func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors возвращает ошибки в порядке добавления
func (v *ValidationErrors) Errors() []FieldError {
	return v.errors
}

// Error реализует интерфейс error
func (v *ValidationErrors) Error() string {
	if len(v.errors) == 0 {
		return "validation: no errors"
	}

	parts := make([]string, len(v.errors))
	for i, e := range v.errors {
		parts[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}
