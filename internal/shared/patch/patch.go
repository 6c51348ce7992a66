package patch

import "encoding/json"

// Field is a tri-state PATCH value. JSON decoding distinguishes a key that is
// absent from the payload (Set=false), a key explicitly set to null
// (Set=true, Valid=false) and a key carrying a value (Set=true, Valid=true).
// Only fields with Set=true enter the update statement; Valid=false writes
// NULL. This replaces "falsy" checks: an intentional empty string is a value,
// not "leave unchanged".
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON is only invoked when the key is present in the payload, which
// is what flips Set.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// MarshalJSON round-trips the same convention: unset fields marshal as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as a nullable pointer for SQL parameters:
// nil when the field holds an explicit null.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// NewValue builds a set field holding a value. Used by tests and defaults.
func NewValue[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

// NewNull builds a set field holding an explicit null.
func NewNull[T any]() Field[T] {
	return Field[T]{Set: true}
}
