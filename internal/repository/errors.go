package repository

import "errors"

// ErrNotFound is returned by writes that matched no document
var ErrNotFound = errors.New("document not found")
