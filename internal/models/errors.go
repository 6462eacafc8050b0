package models

import (
	"errors"
)

var (
	ErrItemNotFound        = errors.New("models: item not found")
	ErrTestimonialNotFound = errors.New("models: testimonial not found")
	ErrContactNotFound     = errors.New("models: contact not found")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrDuplicateEmail      = errors.New("models: duplicate email")
	ErrDuplicateUsername   = errors.New("models: duplicate username")
	ErrInvalidCredentials  = errors.New("models: invalid credentials")
)
