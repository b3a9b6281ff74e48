package identity

import (
	"billmind/internal/core/domain/user"
	"context"
	"strings"
)

// StaticResolver trusts the caller-supplied identifier and falls back to the
// guest identity when none is given. A real authentication collaborator can
// replace it behind the same interface.
type StaticResolver struct{}

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{}
}

func (r *StaticResolver) ResolveUserID(ctx context.Context, rawUserID string) (user.ID, error) {
	rawUserID = strings.TrimSpace(rawUserID)
	if rawUserID == "" {
		return user.Guest, nil
	}
	return user.ID(rawUserID), nil
}
