package model

import "errors"

var (
	ErrInvalidParameters  = errors.New("invalid parameters")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrRequestNotFound    = errors.New("withdrawal request not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAuthFailure        = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPersistence        = errors.New("persistence failure")
	ErrDuplicateClaimCode = errors.New("claim code already issued")
)
