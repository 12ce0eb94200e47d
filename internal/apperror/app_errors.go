package apperror

import "errors"

var (
	ErrInputClosed     = errors.New("input stream closed")
	ErrInvalidPosition = errors.New("position is out of range")
	ErrPositionTaken   = errors.New("position is already taken")
)
