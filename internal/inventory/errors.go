package inventory

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrInvalidPayload = errors.New("invalid payload")
)
