package scenario

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("scenario not found")
	ErrPreconditionFailed = errors.New("precondition failed")
)
