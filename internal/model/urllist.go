package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// URLList is an ordered list of asset URLs stored as a JSON array in a
// TEXT column. Unlike Technologies it allows duplicates, the data model
// does not prevent the same object from being referenced twice.
type URLList []string

func (l URLList) Value() (driver.Value, error) {
	if l == nil {
		l = URLList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal url list: %w", err)
	}
	return string(b), nil
}

func (l *URLList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = URLList{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into URLList", src)
	}

	if len(data) == 0 {
		*l = URLList{}
		return nil
	}

	var urls []string
	err := json.Unmarshal(data, &urls)
	if err != nil {
		return fmt.Errorf("failed to unmarshal url list: %w", err)
	}

	*l = urls
	return nil
}
