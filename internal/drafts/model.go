package drafts

import "time"

// Draft is the last form state saved by one caller. Fields holds the raw form
// values keyed by form field name, exactly as submitted.
type Draft struct {
	OwnerID   string            `json:"-"`
	Fields    map[string]string `json:"fields"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func cloneFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
