package service

import "errors"

var (
	ErrLogNotFound         = errors.New("log not found")
	ErrLogPermissionDenied = errors.New("log access denied")
	ErrInvalidDate         = errors.New("invalid log date")
	ErrCannotReadLog       = errors.New("cannot read log")
	ErrCannotDeleteLog     = errors.New("cannot delete log")
)
