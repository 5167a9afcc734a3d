package drafts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"product-describer/internal/descriptions"
	"product-describer/internal/shared/metrics"
)

// Service saves, restores and resets the form state of a caller.
type Service struct {
	Repo Repo
	// StoreName labels metrics with the backing store.
	StoreName string
	now       func() time.Time
}

func NewService(repo Repo, storeName string) *Service {
	return &Service{Repo: repo, StoreName: storeName, now: func() time.Time { return time.Now().UTC() }}
}

// Save stores the known form fields of fields for ownerID, replacing any
// earlier draft. Unknown keys are dropped; values are kept verbatim.
func (s *Service) Save(ctx context.Context, ownerID string, fields map[string]string) error {
	if s == nil || s.Repo == nil {
		return errors.New("drafts service not configured")
	}
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	kept := make(map[string]string, len(fields))
	for _, name := range descriptions.FormFields() {
		if v, ok := fields[name]; ok {
			kept[name] = v
		}
	}
	draft := Draft{OwnerID: ownerID, Fields: kept, UpdatedAt: s.clock()}
	if err := s.Repo.Save(ctx, draft); err != nil {
		return err
	}
	metrics.IncDraftSaved(s.StoreName)
	return nil
}

// Current returns the saved draft for ownerID or ErrNotFound.
func (s *Service) Current(ctx context.Context, ownerID string) (Draft, error) {
	if s == nil || s.Repo == nil {
		return Draft{}, errors.New("drafts service not configured")
	}
	if strings.TrimSpace(ownerID) == "" {
		return Draft{}, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	return s.Repo.Get(ctx, ownerID)
}

// Reset removes the saved draft. Resetting without a draft is not an error.
func (s *Service) Reset(ctx context.Context, ownerID string) error {
	if s == nil || s.Repo == nil {
		return errors.New("drafts service not configured")
	}
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, ownerID)
}

func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now()
}
