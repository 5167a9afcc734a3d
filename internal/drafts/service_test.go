package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	svc := NewService(NewMemoryRepo(), "memory")
	svc.now = func() time.Time { return time.Date(2026, time.October, 1, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestServiceSaveKeepsOnlyFormFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	err := svc.Save(ctx, "guest:a", map[string]string{
		"productName":  " Lamp ",
		"toneOfVoice":  "Friendly",
		"somethingOdd": "dropped",
	})
	require.NoError(t, err)

	draft, err := svc.Current(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"productName": " Lamp ", "toneOfVoice": "Friendly"}, draft.Fields)
	assert.Equal(t, time.Date(2026, time.October, 1, 9, 30, 0, 0, time.UTC), draft.UpdatedAt)
}

func TestServiceSaveReplacesPreviousDraft(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "guest:a", map[string]string{"productName": "Lamp", "targetAudience": "Readers"}))
	require.NoError(t, svc.Save(ctx, "guest:a", map[string]string{"productName": "Desk"}))

	draft, err := svc.Current(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"productName": "Desk"}, draft.Fields)
}

func TestServiceRequiresOwner(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	assert.True(t, errors.Is(svc.Save(ctx, " ", nil), ErrInvalidInput))
	_, err := svc.Current(ctx, "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(svc.Reset(ctx, ""), ErrInvalidInput))
}

func TestServiceResetWithoutDraft(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Reset(ctx, "guest:a"))
	require.NoError(t, svc.Save(ctx, "guest:a", map[string]string{"productName": "Lamp"}))
	require.NoError(t, svc.Reset(ctx, "guest:a"))

	_, err := svc.Current(ctx, "guest:a")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestServiceNotConfigured(t *testing.T) {
	var svc *Service
	assert.Error(t, svc.Save(context.Background(), "guest:a", nil))
}
