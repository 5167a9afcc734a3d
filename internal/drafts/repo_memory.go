package drafts

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{drafts: make(map[string]Draft)}
}

func (r *MemoryRepo) Save(ctx context.Context, draft Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	draft.Fields = cloneFields(draft.Fields)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.OwnerID] = draft
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, ownerID string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.drafts[ownerID]
	if !ok {
		return Draft{}, ErrNotFound
	}
	draft.Fields = cloneFields(draft.Fields)
	return draft, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, ownerID)
	return nil
}
