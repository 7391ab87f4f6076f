package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest = "failed to process request body"
	MessageFailedGetToken    = "failed to get token"
	MessageFailedGetUser     = "failed to get user"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
