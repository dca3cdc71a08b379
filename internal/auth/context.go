package auth

import (
	"context"

	"github.com/google/uuid"
)

// Role is the caller's role carried in the token
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
	// RoleSystem is assigned to callers using the API key
	RoleSystem Role = "system"
)

// UserContext holds the authenticated caller
type UserContext struct {
	Subject     string
	DisplayName string
	Role        Role
	// CustomerID is set for customer tokens
	CustomerID *uuid.UUID
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// IsAdmin reports whether the caller may use back office endpoints
func (u *UserContext) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSystem
}

// ActorID returns the identifier recorded in audit entries
func (u *UserContext) ActorID() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Subject
}

// ActorFromContext returns the actor id for audit entries, or "system" when unauthenticated
func ActorFromContext(ctx context.Context) string {
	if u, ok := FromContext(ctx); ok {
		return u.ActorID()
	}
	return "system"
}

// CustomerIDFromContext returns the customer id of a customer token
func CustomerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	u, ok := FromContext(ctx)
	if !ok || u.CustomerID == nil {
		return uuid.Nil, false
	}
	return *u.CustomerID, true
}
