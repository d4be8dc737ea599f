package service

import "errors"

var (
	// authentication errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrTokenExpired       = errors.New("session has expired")
	ErrUnknown            = errors.New("an unknown error occurred")

	// recipe errors
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidData    = errors.New("invalid recipe data")
)
