package custody

import "errors"

var (
	ErrNotFound     = errors.New("responsiva not found")
	ErrInvalidInput = errors.New("invalid input")
)
