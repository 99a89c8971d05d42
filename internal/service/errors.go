package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNilSnapshot       = errors.New("env snapshot is nil")
	ErrVariableNotFound  = errors.New("env variable not found")
	ErrUnknownVisibility = errors.New("unknown env visibility")
)
