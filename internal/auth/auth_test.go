package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamisorara/ImageViewer/internal/route"
)

func TestAttemptOutcomes(t *testing.T) {
	a := New(DefaultCredentials(), 0)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		want     Outcome
	}{
		{"accepted", "admin", "password", OutcomeAccepted},
		{"wrong password", "admin", "secret", OutcomeBadCredentials},
		{"wrong user", "root", "password", OutcomeBadCredentials},
		{"padded user", " admin", "password", OutcomeBadCredentials},
		{"empty user", "", "password", OutcomeEmptyInput},
		{"blank password", "admin", "   ", OutcomeEmptyInput},
		{"both empty", "", "", OutcomeEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Attempt(ctx, tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttemptWaitsForDelay(t *testing.T) {
	a := New(DefaultCredentials(), 50*time.Millisecond)

	start := time.Now()
	got, err := a.Attempt(context.Background(), "admin", "password")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, got)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestAttemptEmptyInputSkipsDelay(t *testing.T) {
	a := New(DefaultCredentials(), time.Hour)

	got, err := a.Attempt(context.Background(), "", "password")
	require.NoError(t, err)
	assert.Equal(t, OutcomeEmptyInput, got)
}

func TestAttemptCancelled(t *testing.T) {
	a := New(DefaultCredentials(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := a.Attempt(ctx, "admin", "password")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("attempt did not stop after cancellation")
	}

	_, err := New(DefaultCredentials(), 0).Attempt(ctx, "admin", "password")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "accepted", OutcomeAccepted.String())
	assert.Equal(t, "rejected-empty-input", OutcomeEmptyInput.String())
	assert.Equal(t, "rejected-bad-credentials", OutcomeBadCredentials.String())

	title, msg := OutcomeBadCredentials.Advisory()
	assert.Equal(t, "登录失败", title)
	assert.Equal(t, "用户名或密码错误", msg)
	title, _ = OutcomeAccepted.Advisory()
	assert.Empty(t, title)
}

func TestSessionFromLocation(t *testing.T) {
	assert.Equal(t, Session{}, SessionFromLocation(route.Location{Path: route.Profile}))

	loc := route.Location{Path: route.Profile, Params: ReturnParams("admin")}
	assert.Equal(t, Session{Authenticated: true, Username: "admin"}, SessionFromLocation(loc))

	loc.Params[route.ParamLoginSuccess] = "false"
	assert.False(t, SessionFromLocation(loc).Authenticated)
}
