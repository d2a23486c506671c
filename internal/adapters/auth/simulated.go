package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-service/internal/core/domain"
)

// SimulatedAuthenticator resolves every credential to a canned user
// after a fixed delay, standing in for a real authentication backend.
// It never rejects a login; only context cancellation fails it.
type SimulatedAuthenticator struct {
	delay time.Duration
}

func NewSimulatedAuthenticator(delay time.Duration) *SimulatedAuthenticator {
	return &SimulatedAuthenticator{delay: delay}
}

var welcomeBadge = domain.Badge{
	ID:          "1",
	Name:        "Entusiasta em Arte",
	Description: "Bem-vindo à comunidade!",
	Icon:        "gold",
}

var defaultFriends = []domain.Friend{
	{ID: "2", Name: "Maria Silva", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100"},
	{ID: "3", Name: "João Santos", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100"},
}

func (a *SimulatedAuthenticator) Login(ctx context.Context, email, _ string) (domain.User, error) {
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return domain.User{
		ID:      "1",
		Email:   email,
		Name:    name,
		Badges:  []domain.Badge{welcomeBadge},
		Friends: defaultFriends,
	}, nil
}

func (a *SimulatedAuthenticator) Register(ctx context.Context, email, _ string, name string) (domain.User, error) {
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:     "1",
		Email:  email,
		Name:   name,
		Badges: []domain.Badge{welcomeBadge},
	}, nil
}

func (a *SimulatedAuthenticator) LoginWithGoogle(ctx context.Context) (domain.User, error) {
	if err := a.wait(ctx); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:     "1",
		Email:  "user@gmail.com",
		Name:   "Google User",
		Avatar: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=100",
		Badges: []domain.Badge{welcomeBadge},
	}, nil
}

func (a *SimulatedAuthenticator) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("simulated auth: %w", ctx.Err())
	}
}
