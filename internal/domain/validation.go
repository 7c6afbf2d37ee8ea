package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Validation constants
const (
	MaxCustomerNameLength = 255
	MinCustomerNameLength = 1
	MaxDescriptionLength  = 500
	MaxReferenceLength    = 100
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,14}$`)

// ValidateCustomerName validates a customer name.
func ValidateCustomerName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinCustomerNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCustomerName)
	}

	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCustomerName, MaxCustomerNameLength)
	}

	return nil
}

// ValidateEmail validates email format. Empty is allowed; email is an
// optional contact field.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePhone validates phone format. Empty is allowed.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}

	if !phoneRegex.MatchString(phone) {
		return ErrInvalidPhone
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
