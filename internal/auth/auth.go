package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/news-portal-api/internal/models"
	apperrors "github.com/news-portal-api/pkg/errors"
)

// Principal is the authenticated caller of a request
type Principal struct {
	UserID string
	Role   models.UserRole
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// RequireRole fails with UnauthorizedError when ctx has no principal and with
// PermissionError when the principal's role is not in roles
func RequireRole(ctx context.Context, roles ...models.UserRole) (*Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	for _, r := range roles {
		if p.Role == r {
			return p, nil
		}
	}
	return nil, apperrors.NewPermissionError(fmt.Sprintf("role %s is not allowed to perform this action", p.Role))
}

// RequireDashboard allows journalists, admins and super admins
func RequireDashboard(ctx context.Context) (*Principal, error) {
	return RequireRole(ctx, models.DashboardRoles...)
}

// RequireEditor allows admins and super admins
func RequireEditor(ctx context.Context) (*Principal, error) {
	return RequireRole(ctx, models.EditorRoles...)
}

// Resolver turns a session token into a principal
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Principal, error)
}

// StaticTokenResolver resolves bearer tokens from a fixed table
type StaticTokenResolver struct {
	tokens map[string]Principal
}

// NewStaticTokenResolver parses "token:ROLE[:user-id]" entries separated by commas
func NewStaticTokenResolver(entries string) (*StaticTokenResolver, error) {
	r := &StaticTokenResolver{tokens: make(map[string]Principal)}
	for _, entry := range strings.Split(entries, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid auth token entry %q", entry)
		}
		role := models.UserRole(strings.ToUpper(parts[1]))
		if !models.ValidRoles[role] {
			return nil, fmt.Errorf("invalid role %q in auth token entry", parts[1])
		}
		userID := parts[0]
		if len(parts) == 3 && parts[2] != "" {
			userID = parts[2]
		}
		r.tokens[parts[0]] = Principal{UserID: userID, Role: role}
	}
	return r, nil
}

// Resolve returns the principal bound to token
func (r *StaticTokenResolver) Resolve(ctx context.Context, token string) (*Principal, error) {
	p, ok := r.tokens[token]
	if !ok {
		return nil, apperrors.NewUnauthorizedError("invalid session token")
	}
	return &p, nil
}
