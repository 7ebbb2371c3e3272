package conf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
)

// Setting is a configuration value shared between one sample loop and any
// number of writers. Create it with [NewSetting]. A zero Setting holds no
// value until the first Store; Modify and UnmarshalJSON fail with
// [ErrUnset] before that.
type Setting[T any] struct {
	v        atomic.Pointer[T]
	validate func(*T) error
	mu       sync.Mutex // serializes writers
}

// NewSetting returns a setting holding initial. validate may be nil; it
// must not retain its argument.
func NewSetting[T any](initial T, validate func(*T) error) (*Setting[T], error) {
	s := &Setting[T]{validate: validate}
	if err := s.Store(initial); err != nil {
		return nil, err
	}

	return s, nil
}

// Load returns the live snapshot. The caller must not modify it.
func (s *Setting[T]) Load() *T {
	return s.v.Load()
}

// Store validates v and publishes it.
func (s *Setting[T]) Store(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.publish(&v)
}

// Modify applies fn to a copy of the live value and publishes the result.
// When fn or validation fails, the live value is unchanged.
func (s *Setting[T]) Modify(fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.v.Load()
	if cur == nil {
		return ErrUnset
	}

	next := *cur
	if err := fn(&next); err != nil {
		return err
	}

	return s.publish(&next)
}

func (s *Setting[T]) publish(v *T) error {
	if s.validate != nil {
		if err := s.validate(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}

	s.v.Store(v)

	return nil
}

// MarshalJSON encodes the live value.
func (s *Setting[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v.Load())
}

// UnmarshalJSON decodes data over a copy of the live value, validates the
// result and publishes it. Unknown fields are rejected.
func (s *Setting[T]) UnmarshalJSON(data []byte) error {
	return s.Modify(func(v *T) error {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("conf: decode: %w", err)
		}

		return nil
	})
}
