package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPasswordRequired is returned for encrypted documents uploaded
	// without a password.
	ErrPasswordRequired = errors.New("document is encrypted and no password was given")
	ErrWrongPassword    = errors.New("wrong password")
	ErrProcessing       = errors.New("failed to process document")

	ErrNoResult = errors.New("no decrypted document available")
)
