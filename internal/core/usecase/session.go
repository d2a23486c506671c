package usecase

import (
	"context"
	"sync"

	"storefront-service/internal/contextkeys"
	"storefront-service/internal/core/domain"
	"storefront-service/internal/core/port"
)

// SessionUseCase drives the visitor session through its tagged states:
// LoggedOut -> LoggingIn -> LoggedIn on success, back to LoggedOut on
// failure or logout. The authenticator behind it is simulated today; a
// real one slots in without changing any consumer.
type SessionUseCase struct {
	auth port.AuthenticatorPort

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionUseCase(auth port.AuthenticatorPort) *SessionUseCase {
	return &SessionUseCase{
		auth:    auth,
		session: domain.Session{State: domain.StateLoggedOut},
	}
}

func (uc *SessionUseCase) Current() domain.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session
}

func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (domain.Session, error) {
	return uc.resolve(ctx, func() (domain.User, error) {
		return uc.auth.Login(ctx, email, password)
	})
}

func (uc *SessionUseCase) Register(ctx context.Context, email, password, name string) (domain.Session, error) {
	return uc.resolve(ctx, func() (domain.User, error) {
		return uc.auth.Register(ctx, email, password, name)
	})
}

func (uc *SessionUseCase) LoginWithGoogle(ctx context.Context) (domain.Session, error) {
	return uc.resolve(ctx, func() (domain.User, error) {
		return uc.auth.LoginWithGoogle(ctx)
	})
}

func (uc *SessionUseCase) Logout() {
	uc.mu.Lock()
	uc.session = domain.Session{State: domain.StateLoggedOut}
	uc.mu.Unlock()
}

func (uc *SessionUseCase) resolve(ctx context.Context, authenticate func() (domain.User, error)) (domain.Session, error) {
	uc.mu.Lock()
	uc.session = domain.Session{State: domain.StateLoggingIn}
	uc.mu.Unlock()

	user, err := authenticate()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Authentication failed", port.Fields{"error": err.Error()})
		uc.session = domain.Session{State: domain.StateLoggedOut}
		return uc.session, err
	}
	uc.session = domain.Session{State: domain.StateLoggedIn, User: &user}
	return uc.session, nil
}
