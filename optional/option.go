// Package optional holds values that may be unset.
package optional

// Option is either a value of T or nothing. The zero Option is unset.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a set Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an unset Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// NonZero returns an unset Option when v is the zero value of T.
func NonZero[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

// IsSet reports whether the Option holds a value.
func (o Option[T]) IsSet() bool {
	return o.ok
}

// Get returns the held value, or the zero value of T when unset.
func (o Option[T]) Get() T {
	return o.value
}

// Or returns the held value, or def when unset.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
