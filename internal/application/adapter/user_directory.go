// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// UserDirectory lists the users the agent runner iterates over. User identity
// itself is owned by the identity collaborator; the core only consumes opaque
// user IDs.
type UserDirectory interface {
	// ListUserIDs returns the IDs of all known users.
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}
