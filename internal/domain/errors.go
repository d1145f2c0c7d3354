package domain

import "errors"

// Ошибки аутентификации
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrDemoUserNotFound   = errors.New("demo user not found")
)

// Ошибки пользователей и кошельков
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnknownCompartment  = errors.New("unknown wallet compartment")
)

// Ошибки заказов
var (
	ErrOrderNotFound = errors.New("order not found")
)

// Ошибки платежных заявок
var (
	ErrPaymentRequestNotFound  = errors.New("payment request not found")
	ErrPaymentRequestProcessed = errors.New("payment request already processed")
)

// Ошибки доступа
var (
	ErrPermissionDenied = errors.New("permission denied")
)
