package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_DerivesNameFromEmail(t *testing.T) {
	a := NewSimulatedAuthenticator(0)

	user, err := a.Login(context.Background(), "ana.silva@example.com", "whatever")
	require.NoError(t, err)

	assert.Equal(t, "ana.silva", user.Name)
	assert.Equal(t, "ana.silva@example.com", user.Email)
	assert.NotEmpty(t, user.Badges)
	assert.NotEmpty(t, user.Friends)
}

func TestRegister_UsesGivenName(t *testing.T) {
	a := NewSimulatedAuthenticator(0)

	user, err := a.Register(context.Background(), "ana@example.com", "whatever", "Ana Silva")
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", user.Name)
	assert.NotEmpty(t, user.Badges)
}

func TestLoginWithGoogle(t *testing.T) {
	a := NewSimulatedAuthenticator(0)

	user, err := a.LoginWithGoogle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Google User", user.Name)
}

func TestWait_RespectsDelay(t *testing.T) {
	a := NewSimulatedAuthenticator(50 * time.Millisecond)

	start := time.Now()
	_, err := a.Login(context.Background(), "ana@example.com", "whatever")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_CancelledContextFails(t *testing.T) {
	a := NewSimulatedAuthenticator(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Login(ctx, "ana@example.com", "whatever")
	assert.Error(t, err)
}
