package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// TagRef is a denormalized copy of a canonical tag embedded on a vendor.
// Renaming the canonical tag does not rewrite embedded copies.
type TagRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// TagRefs is the embedded tag list persisted as JSONB.
type TagRefs []TagRef

// Value marshals the list into JSON for Postgres.
func (t TagRefs) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the list.
func (t *TagRefs) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("tag refs: unsupported scan type %T", value)
	}

	var result TagRefs
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*t = result
	return nil
}

// ContainsSlug reports whether any embedded tag matches one of the slugs.
func (t TagRefs) ContainsSlug(slugs ...string) bool {
	for _, ref := range t {
		for _, s := range slugs {
			if ref.Slug == s {
				return true
			}
		}
	}
	return false
}
