package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput — общий признак некорректного или отсутствующего изображения.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError описывает, что именно не так с входными данными.
type InvalidInputError struct {
	Reason string
}

// NewInvalidInput создаёт ошибку с форматированной причиной.
func NewInvalidInput(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// Is позволяет проверять ошибку через errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
