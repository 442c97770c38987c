package domain

import (
	"errors"
)

const (
	RoleProvider    = "provider"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	// Forbidden relationship shared by both review workflows.
	ErrSelfReview = errors.New("reviewer cannot review their own record")
)
