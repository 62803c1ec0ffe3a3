package credential

import "errors"

var (
	ErrNotFound     = errors.New("credential not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDecrypt      = errors.New("cannot decrypt credential")
)
