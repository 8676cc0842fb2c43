package models

import (
	"errors"
)

var (
	ErrInvalidCredentials  = errors.New("models: invalid credentials")
	ErrInvalidPassword     = errors.New("models: invalid password")
	ErrDuplicateEmail      = errors.New("models: duplicate email")
	ErrDuplicatePhone      = errors.New("models: duplicate phone number")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrTripNotFound        = errors.New("models: trip not found")
	ErrBookingNotFound     = errors.New("models: booking not found")
	ErrChatNotFound        = errors.New("models: chat not found")
	ErrMessageNotFound     = errors.New("models: message not found")
	ErrSessionNotFound     = errors.New("models: session not found")
	ErrInvalidResetCode    = errors.New("models: invalid reset code")
	ErrResetCodeExpired    = errors.New("models: reset code expired")
	ErrInvalidStatusChange = errors.New("models: invalid booking status change")
	ErrNotEnoughSeats      = errors.New("models: not enough seats for trip")
)
