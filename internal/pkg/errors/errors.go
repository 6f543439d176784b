package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrExtraction используется, когда из документа не удалось извлечь осмысленный текст.
	ErrExtraction = errors.New("document text extraction failed")

	// ErrGeneration используется для сбоев внешнего генератора контента
	// (транспортная ошибка, некорректный JSON, неполный ответ).
	ErrGeneration = errors.New("quiz generation failed")

	// ErrPersistence используется для сбоев хранилища. Операция, в которой он
	// возник, считается полностью неуспешной — частичное состояние не фиксируется.
	ErrPersistence = errors.New("persistence failure")

	// ErrConflict используется для конфликтов состояния (например, повторная
	// отправка черновика, пока генерация ещё выполняется).
	ErrConflict = errors.New("resource state conflict")
)

// ValidationError содержит детализацию по каждому невалидному полю.
// Валидатор собирает ВСЕ нарушения, а не только первое.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создает ошибку валидации с деталями по полям
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	// Сортируем имена полей для детерминированного сообщения
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s (%s)", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
