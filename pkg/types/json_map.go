package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BusinessHours maps a weekday name to free-text opening hours.
type BusinessHours map[string]string

func (b BusinessHours) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

func (b *BusinessHours) Scan(value interface{}) error {
	return scanJSONMap(value, b)
}

// Metadata is the category-dependent free-form vendor metadata blob.
type Metadata map[string]any

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *Metadata) Scan(value interface{}) error {
	return scanJSONMap(value, m)
}

func scanJSONMap(value interface{}, dest any) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("json map: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, dest)
}
