package user

import "context"

// ID is an opaque reference to a reminder owner. Real authentication is
// delegated to an external identity provider, so the domain only carries
// the resolved identifier around.
type ID string

// Guest is the identity assigned to unauthenticated callers.
const Guest = ID("guest")

func (id ID) String() string {
	return string(id)
}

// IdentityResolver maps a raw caller-supplied identity hint to a user ID.
type IdentityResolver interface {
	ResolveUserID(ctx context.Context, rawUserID string) (ID, error)
}
