package cli

import "errors"

// Common CLI errors
var (
	ErrKeyRequired = errors.New("--key is required (use --key \"\" for the empty key)")
)
