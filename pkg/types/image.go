package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/haneulsoft/weddingmoa-backend/pkg/enums"
)

// Image is a single embedded image record on a vendor.
type Image struct {
	URL          string          `json:"url"`
	Type         enums.ImageType `json:"type"`
	DisplayOrder int             `json:"displayOrder"`
	AltText      string          `json:"altText"`
}

// Images is the embedded image list persisted as JSONB.
type Images []Image

// Value marshals the list into JSON for Postgres.
func (i Images) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the list.
func (i *Images) Scan(value interface{}) error {
	if value == nil {
		*i = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("images: unsupported scan type %T", value)
	}

	var result Images
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*i = result
	return nil
}
