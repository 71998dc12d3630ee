package models

import "errors"

// Ошибки операций с комнатами, различаются на уровне handler'ов
var (
	ErrMissingField    = errors.New("missing required field")
	ErrRoomNotFound    = errors.New("room not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrInvalidPassword = errors.New("invalid room password")
)
