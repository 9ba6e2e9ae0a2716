// Package auth simulates signing in against a single in-memory account.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/Kamisorara/ImageViewer/internal/route"
)

// DefaultDelay is how long an attempt takes when nothing is configured.
const DefaultDelay = 1500 * time.Millisecond

// Outcome is the result of a login attempt.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeEmptyInput
	OutcomeBadCredentials
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeEmptyInput:
		return "rejected-empty-input"
	case OutcomeBadCredentials:
		return "rejected-bad-credentials"
	default:
		return "unknown"
	}
}

// Advisory returns the title and message shown for a rejection.
func (o Outcome) Advisory() (title, message string) {
	switch o {
	case OutcomeEmptyInput:
		return "提示", "用户名和密码不能为空"
	case OutcomeBadCredentials:
		return "登录失败", "用户名或密码错误"
	default:
		return "", ""
	}
}

// Credentials is the account attempts are checked against.
type Credentials struct {
	Username string
	Password string
}

// DefaultCredentials returns the built-in account.
func DefaultCredentials() Credentials {
	return Credentials{Username: "admin", Password: "password"}
}

// Authenticator checks attempts after a simulated round trip.
type Authenticator struct {
	credentials Credentials
	delay       time.Duration
}

// New creates an authenticator. A non-positive delay answers immediately.
func New(credentials Credentials, delay time.Duration) *Authenticator {
	return &Authenticator{credentials: credentials, delay: delay}
}

// Delay returns the simulated round-trip time.
func (a *Authenticator) Delay() time.Duration { return a.delay }

// Attempt validates the input and, when both fields are filled in, waits
// for the simulated delay before comparing against the account. Empty
// input is rejected without waiting. If ctx ends during the delay the
// attempt is abandoned and ctx.Err() returned.
func (a *Authenticator) Attempt(ctx context.Context, username, password string) (Outcome, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return OutcomeEmptyInput, nil
	}

	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return OutcomeBadCredentials, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return OutcomeBadCredentials, err
	}

	if username == a.credentials.Username && password == a.credentials.Password {
		return OutcomeAccepted, nil
	}
	return OutcomeBadCredentials, nil
}

// Session is the sign-in state shown on the profile tab.
type Session struct {
	Authenticated bool
	Username      string
}

// SessionFromLocation reads the parameters the login screen hands back.
// The zero Session is returned when they are absent.
func SessionFromLocation(loc route.Location) Session {
	if loc.Param(route.ParamLoginSuccess) != "true" {
		return Session{}
	}
	return Session{Authenticated: true, Username: loc.Param(route.ParamUserName)}
}

// ReturnParams builds the parameters handed back to the profile tab after
// an accepted attempt.
func ReturnParams(username string) route.Params {
	return route.Params{
		route.ParamLoginSuccess: "true",
		route.ParamUserName:     username,
	}
}
