package risk

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput - входные параметры вне физически допустимого диапазона
	ErrInvalidInput = errors.New("invalid input")
	// ErrDomain - формула дала неконечное значение
	ErrDomain = errors.New("computation out of domain")
)

// InvalidInputError описывает недопустимое поле наблюдения
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DomainError описывает величину, которую нельзя вычислить
type DomainError struct {
	Quantity string
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("cannot compute %s: %s", e.Quantity, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func requirePositive(field string, v float64) error {
	if !isFinite(v) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v <= 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be greater than zero"}
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if !isFinite(v) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

func checkFinite(quantity string, v float64) error {
	if !isFinite(v) {
		return &DomainError{Quantity: quantity, Reason: fmt.Sprintf("result is not finite (%g)", v)}
	}
	return nil
}

func checkRadius(quantity string, v float64) error {
	if err := checkFinite(quantity, v); err != nil {
		return err
	}
	if v < 0 {
		return &DomainError{Quantity: quantity, Reason: fmt.Sprintf("negative radius (%g)", v)}
	}
	return nil
}
