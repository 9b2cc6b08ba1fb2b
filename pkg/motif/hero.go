package motif

import (
	"fmt"

	"github.com/getmockd/stablerand/pkg/stablerand"
)

// Rotation orders items for a rotating hero. The same key always yields the
// same order.
func Rotation[T any](key string, items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: nothing to rotate", stablerand.ErrInvalidArgument)
	}
	return stablerand.Shuffle(stablerand.NewFromKey(key), items), nil
}

// Pick selects the single hero shown for key.
func Pick[T any](key string, items []T) (T, error) {
	return stablerand.Choice(stablerand.NewFromKey(key), items)
}
