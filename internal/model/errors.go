package model

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrRoomNotFound     = errors.New("chat room not found")
	ErrValidation       = errors.New("validation error")
)
