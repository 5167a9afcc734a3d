package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Save(ctx context.Context, draft Draft) error {
	const query = `
INSERT INTO form_drafts (owner_id, fields, created_at, updated_at)
VALUES ($1, $2, now(), $3)
ON CONFLICT (owner_id) DO UPDATE SET
  fields = EXCLUDED.fields,
  updated_at = EXCLUDED.updated_at`
	payload, err := json.Marshal(draft.Fields)
	if err != nil {
		return fmt.Errorf("encode draft fields: %w", err)
	}
	if _, err := r.DB.ExecContext(ctx, query, draft.OwnerID, payload, draft.UpdatedAt); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (r *PGRepo) Get(ctx context.Context, ownerID string) (Draft, error) {
	const query = `
SELECT fields, updated_at
FROM form_drafts
WHERE owner_id = $1
LIMIT 1`
	var payload []byte
	draft := Draft{OwnerID: ownerID}
	err := r.DB.QueryRowContext(ctx, query, ownerID).Scan(&payload, &draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, fmt.Errorf("load draft: %w", err)
	}
	if err := json.Unmarshal(payload, &draft.Fields); err != nil {
		return Draft{}, fmt.Errorf("decode draft fields: %w", err)
	}
	if draft.Fields == nil {
		draft.Fields = map[string]string{}
	}
	return draft, nil
}

func (r *PGRepo) Delete(ctx context.Context, ownerID string) error {
	const query = `DELETE FROM form_drafts WHERE owner_id = $1`
	if _, err := r.DB.ExecContext(ctx, query, ownerID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
