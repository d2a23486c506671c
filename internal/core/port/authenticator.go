package port

import (
	"context"

	"storefront-service/internal/core/domain"
)

// AuthenticatorPort resolves credentials into a user. The current
// implementation is simulated; a real backend slots in behind this port
// without changing the session use case or its consumers.
type AuthenticatorPort interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, email, password, name string) (domain.User, error)
	LoginWithGoogle(ctx context.Context) (domain.User, error)
}
