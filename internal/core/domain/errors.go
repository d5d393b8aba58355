package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrColumnNotFound     = errors.New("column not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("admin rights required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyBaseURL       = errors.New("base url is empty")
	ErrInvalidPath        = errors.New("path must start with /")
)
