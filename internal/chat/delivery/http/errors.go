package http

import "errors"

var errInvalidUserID = errors.New("user_id must not be negative")
