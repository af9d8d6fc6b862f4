package services

import "errors"

var (
	ErrDuplicateIdentifier = errors.New("login id already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnknownSong         = errors.New("unknown song")
	ErrInvalidScore        = errors.New("score must be non-negative")
	ErrMissingAudio        = errors.New("audio file is required")
)
