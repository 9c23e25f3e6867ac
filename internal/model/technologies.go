package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Technologies is an ordered set of free-text labels. Insertion order is
// preserved and exact duplicates are suppressed. Stored as a JSON array
// in a TEXT column.
type Technologies []string

// NewTechnologies builds the set from raw labels, dropping empty strings
// and duplicates while keeping first-occurrence order.
func NewTechnologies(labels []string) Technologies {
	seen := make(map[string]bool, len(labels))
	out := make(Technologies, 0, len(labels))
	for _, label := range labels {
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// Add appends a label unless it is already present.
func (t Technologies) Add(label string) Technologies {
	if label == "" {
		return t
	}
	for _, existing := range t {
		if existing == label {
			return t
		}
	}
	return append(t, label)
}

func (t Technologies) Value() (driver.Value, error) {
	if t == nil {
		t = Technologies{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal technologies: %w", err)
	}
	return string(b), nil
}

func (t *Technologies) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*t = Technologies{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into Technologies", src)
	}

	if len(data) == 0 {
		*t = Technologies{}
		return nil
	}

	var labels []string
	err := json.Unmarshal(data, &labels)
	if err != nil {
		return fmt.Errorf("failed to unmarshal technologies: %w", err)
	}

	// Normalize on read as well, older rows may predate deduplication
	*t = NewTechnologies(labels)
	return nil
}
