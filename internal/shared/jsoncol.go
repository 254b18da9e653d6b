package shared

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// JSONList is a JSON array column (sqlite TEXT, postgres jsonb) decoded into a slice.
//
// NULL and empty values scan into an empty, non-nil slice.
type JSONList[T any] []T

// Scan implements [sql.Scanner].
func (l *JSONList[T]) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = JSONList[T]{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}

	if len(data) == 0 {
		*l = JSONList[T]{}
		return nil
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to decode JSON column: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	*l = out
	return nil
}

// Value implements [driver.Valuer].
func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]T(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Slice returns a non-nil copy of the list.
func (l JSONList[T]) Slice() []T {
	if l == nil {
		return []T{}
	}
	return slices.Clone([]T(l))
}
