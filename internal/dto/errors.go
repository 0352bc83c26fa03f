package dto

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("errRecordNotFound")
	ErrNotConfigured = errors.New("errNotConfigured")
)
