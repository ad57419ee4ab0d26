// Package auth carries the authenticated caller identity through a request.
// The inbound HTTP middleware resolves JWT claims into a Principal exactly
// once at request entry; everything below reads the principal from the
// context instead of re-querying roles per mutation.
package auth

import "context"

// Role names the clinical roles known to the radiology module.
type Role string

const (
	RoleReferringPhysician  Role = "referring_physician"
	RoleScheduler           Role = "scheduler"
	RolePerformingPhysician Role = "performing_physician"
	RoleReadingPhysician    Role = "reading_physician"
)

// Capabilities is the capability set derived from the caller's roles.
// It is resolved once per request and never re-queried.
type Capabilities struct {
	Referring  bool
	Scheduler  bool
	Performing bool
	Reading    bool
}

// Principal is the authenticated caller.
type Principal struct {
	UserID       int64
	Username     string
	Capabilities Capabilities
}

// NewPrincipal resolves the given roles into a Principal with its capability set.
func NewPrincipal(userID int64, username string, roles []Role) Principal {
	p := Principal{UserID: userID, Username: username}
	for _, role := range roles {
		switch role {
		case RoleReferringPhysician:
			p.Capabilities.Referring = true
		case RoleScheduler:
			p.Capabilities.Scheduler = true
		case RolePerformingPhysician:
			p.Capabilities.Performing = true
		case RoleReadingPhysician:
			p.Capabilities.Reading = true
		}
	}
	return p
}

// IsSuper reports whether the caller holds none of the clinical roles,
// which the form treats as an unrestricted user.
func (p Principal) IsSuper() bool {
	c := p.Capabilities
	return !c.Referring && !c.Scheduler && !c.Performing && !c.Reading
}

type contextKey struct{}

// WithPrincipal returns a context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the authenticated caller, if any.
// The second return value is false for unauthenticated requests.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
