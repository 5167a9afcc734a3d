package descriptions

import (
	"context"
	"time"

	"product-describer/internal/shared/metrics"
	"product-describer/internal/shared/telemetry"
)

// DraftSaver persists the submitted form so it can be restored later.
type DraftSaver interface {
	Save(ctx context.Context, ownerID string, fields map[string]string) error
}

// Service runs the validate-then-compose pipeline for HTTP and CLI callers.
type Service struct {
	Validator *Validator
	Drafts    DraftSaver
	// Delay is an optional pause before composing, used by the UI to show
	// its loading state. Zero disables it.
	Delay time.Duration
}

// NewService constructs a Service for the given categories.
func NewService(categories []string, drafts DraftSaver, delay time.Duration) *Service {
	return &Service{
		Validator: NewValidator(categories),
		Drafts:    drafts,
		Delay:     delay,
	}
}

func (s *Service) validator() *Validator {
	if s == nil || s.Validator == nil {
		return NewValidator(nil)
	}
	return s.Validator
}

// Categories lists the accepted product categories.
func (s *Service) Categories() []string {
	return s.validator().Categories()
}

// Check validates raw input and records a metric per failing field.
func (s *Service) Check(raw map[string]string) ValidationResult {
	result := s.validator().Validate(raw)
	for field := range result.Errors {
		metrics.IncValidationFailure(field)
	}
	return result
}

// Generate validates raw, saves it as the owner's draft and composes the
// description. Field errors are returned as data; the error return is only
// set when the context ends during the delay.
func (s *Service) Generate(ctx context.Context, ownerID string, raw map[string]string) (Result, FieldErrors, error) {
	checked := s.Check(raw)
	if !checked.Valid() {
		return Result{}, checked.Errors, nil
	}

	if s.Drafts != nil && ownerID != "" {
		if err := s.Drafts.Save(ctx, ownerID, checked.Record.Fields()); err != nil {
			telemetry.Warn("descriptions.draft_save_failed", map[string]any{
				"user_id": ownerID,
				"error":   err.Error(),
			})
		}
	}

	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Result{}, nil, ctx.Err()
		case <-timer.C:
		}
	}

	start := time.Now()
	result := Generate(checked.Record)
	metrics.ObserveGeneration(string(result.Tone), string(result.Length), time.Since(start), result.WordCount)
	return result, nil, nil
}
