package attendance

import "errors"

var (
	ErrLogNotFound       = errors.New("attendance log not found")
	ErrAlreadyClockedOut = errors.New("attendance log already closed")
)
