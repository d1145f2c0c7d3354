package memory

import "errors"

// Ошибки хранилища
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrRequestNotFound = errors.New("payment request not found")
)
