package service

import "errors"

// Ошибки валидации входных данных
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidAction   = errors.New("invalid action")
	ErrInvalidSettings = errors.New("invalid income settings")
)
