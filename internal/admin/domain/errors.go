package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidConfirmToken = errors.New("invalid or expired confirm token")
)
