package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrSessionUnavailable = errors.New("session backend unavailable")
	ErrStorageDisabled    = errors.New("report storage not configured")
)
