package errors

import "errors"

var (
	ErrInvalidRoomID = errors.New("invalid room ID format")
)
