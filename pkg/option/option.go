package option

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilValue is returned (or panicked with) when a nil value is used to construct a present Option.
// Absence must be expressed with Empty.
var ErrNilValue = errors.New("option: invalid argument: nil value")

// Option represents an optional value.
// It either contains a value or it does not.
//
// The set of implementations is closed: Present and Absent are the only variants.
type Option[T any] interface {
	// HasValue returns true if the Option contains a value.
	HasValue() bool

	// Value returns the value (or its default) stored in the Option.
	Value() T

	sealed()
}

// Present is the variant holding a value.
type Present[T any] struct {
	value T
}

func (Present[T]) HasValue() bool { return true }

func (o Present[T]) Value() T { return o.value }

func (Present[T]) sealed() {}

func (o Present[T]) String() string {
	return fmt.Sprintf("Some(%v)", o.value)
}

// Absent is the variant holding nothing.
type Absent[T any] struct{}

func (Absent[T]) HasValue() bool { return false }

// Value returns the zero value of T.
func (Absent[T]) Value() T {
	var zero T

	return zero
}

func (Absent[T]) sealed() {}

func (Absent[T]) String() string {
	return "Empty"
}

// Some returns an Option holding v.
//
// It panics with an error wrapping ErrNilValue if v is nil.
func Some[T any](v T) Option[T] {
	o, err := TrySome(v)
	if err != nil {
		panic(err)
	}

	return o
}

// TrySome is like Some, but returns an error instead of panicking.
func TrySome[T any](v T) (Option[T], error) {
	if isNil(v) {
		return nil, fmt.Errorf("%w (%T)", ErrNilValue, v)
	}

	return Present[T]{value: v}, nil
}

// Empty returns an Option holding nothing.
func Empty[T any]() Option[T] {
	return Absent[T]{}
}

// Of converts v into an Option.
// The result is empty if v is nil or if v is text of zero length.
func Of[T any](v T) Option[T] {
	if isNil(v) || isEmptyText(v) {
		return Empty[T]()
	}

	return Present[T]{value: v}
}

// IsSome reports whether o holds a value. A nil Option holds nothing.
func IsSome[T any](o Option[T]) bool {
	return o != nil && o.HasValue()
}

// IsNone reports whether o holds nothing.
func IsNone[T any](o Option[T]) bool {
	return !IsSome(o)
}

// Unwrap returns the value stored in o, or the zero value of T.
func Unwrap[T any](o Option[T]) T {
	if IsNone(o) {
		var zero T

		return zero
	}

	return o.Value()
}

// Match calls some with the stored value if o holds one, none otherwise.
// Exactly one of the two functions is called.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	switch v := o.(type) {
	case Present[T]:
		return some(v.value)
	default:
		return none()
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func isEmptyText(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.String && rv.Len() == 0
}
