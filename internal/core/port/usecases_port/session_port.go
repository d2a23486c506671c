package usecases_port

import (
	"context"

	"storefront-service/internal/core/domain"
)

type SessionUseCase interface {
	Current() domain.Session
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, email, password, name string) (domain.Session, error)
	LoginWithGoogle(ctx context.Context) (domain.Session, error)
	Logout()
}
