package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FormAnswers holds the free-form survey answers of a visit. It is stored
// as a JSON text column.
type FormAnswers map[string]any

// Value implements [driver.Valuer].
func (f FormAnswers) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode form answers: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (f *FormAnswers) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = FormAnswers{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported form answers type %T", src)
	}

	if len(raw) == 0 {
		*f = FormAnswers{}
		return nil
	}

	out := FormAnswers{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode form answers: %w", err)
	}
	*f = out
	return nil
}
