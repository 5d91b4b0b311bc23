// Package auth provides the access-control gate in front of
// administrator-only surfaces. The admin editor trusts this gate and
// performs no authorization checks of its own.
package auth

import (
	"github.com/shopverse/storefront/internal/domain/shared"
)

// SessionReader exposes the session state the gate decides on
type SessionReader interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Gate decides whether the current session may reach protected surfaces
type Gate struct {
	sessions SessionReader
}

// NewGate creates a gate over the given session state
func NewGate(sessions SessionReader) *Gate {
	return &Gate{sessions: sessions}
}

// RequireAuthenticated returns ErrUnauthorized when no session is active
func (g *Gate) RequireAuthenticated() error {
	if !g.sessions.IsAuthenticated() {
		return shared.ErrUnauthorized
	}
	return nil
}

// RequireAdmin returns ErrUnauthorized when no session is active and
// ErrForbidden when the active session is not an administrator.
func (g *Gate) RequireAdmin() error {
	if err := g.RequireAuthenticated(); err != nil {
		return err
	}
	if !g.sessions.IsAdmin() {
		return shared.ErrForbidden
	}
	return nil
}
