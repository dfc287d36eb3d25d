package client

import "errors"

var ErrUnavailable = errors.New("scoring service unavailable")
