package stablerand

import "errors"

// ErrInvalidArgument is wrapped by every error a sampling operation returns.
// It signals a caller bug such as an empty slice or an inverted range.
var ErrInvalidArgument = errors.New("invalid argument")
