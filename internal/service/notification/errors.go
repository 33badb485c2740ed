package notification

import "errors"

var (
	ErrUndefinedStatus = errors.New("no notification defined for status")
)
