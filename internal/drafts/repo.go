package drafts

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("draft not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo persists one draft per owner.
type Repo interface {
	Save(ctx context.Context, draft Draft) error
	Get(ctx context.Context, ownerID string) (Draft, error)
	Delete(ctx context.Context, ownerID string) error
}
