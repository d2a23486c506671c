package port

import (
	"context"
	"errors"
)

var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStorePort is a plain key/value store for per-visitor
// preferences. The only preference the storefront persists is the
// selected UI language.
type PreferenceStorePort interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
