package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Text is an optional string where blank input counts as absent.
type Text = Optional[string]

// SomeText returns an absent Text for blank strings.
func SomeText(s string) Text {
	if strings.TrimSpace(s) == "" {
		return None[string]()
	}
	return Some(s)
}

// NonBlank normalizes a decoded Text so that "" and whitespace become absent.
func NonBlank(t Text) Text {
	v, ok := t.Get()
	if !ok {
		return t
	}
	return SomeText(v)
}
