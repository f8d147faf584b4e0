package box

import "fmt"

// Box represents an optional value of type T.
//
// The zero value is an empty box. Whether a box is empty is decided by its
// tag only; the payload of an empty box is always the zero value of T and
// is never handed out by the query methods except through Unwrap's error path.
type Box[T any] struct {
	value T
	ok    bool
}

// Empty constructs a box holding no value.
func Empty[T any]() Box[T] {
	var zero T
	return Box[T]{value: zero, ok: false}
}

// Of constructs a box holding v.
//
// The result is always populated, even if v is itself a nil pointer, slice,
// map or interface.
func Of[T any](v T) Box[T] {
	return Box[T]{value: v, ok: true}
}

// IsEmpty reports whether the box holds no value.
func (b Box[T]) IsEmpty() bool {
	return !b.ok
}

// IsPresent reports whether the box holds a value.
func (b Box[T]) IsPresent() bool {
	return b.ok
}

// Unwrap returns the value held by b. For an empty box it returns the zero
// value of T and an *EmptyValueError.
func (b Box[T]) Unwrap() (T, error) {
	if !b.ok {
		var zero T
		return zero, emptyValueError[T]()
	}
	return b.value, nil
}

// MustUnwrap returns the value or panics with an *EmptyValueError if the box
// is empty.
// Useful in tests or when emptiness has already been checked.
func (b Box[T]) MustUnwrap() T {
	if !b.ok {
		panic(emptyValueError[T]())
	}
	return b.value
}

// UnwrapOr returns the contained value or a default.
func (b Box[T]) UnwrapOr(def T) T {
	if b.ok {
		return b.value
	}
	return def
}

// String renders a populated box as "Box(<value>)" and an empty one as "Box()".
func (b Box[T]) String() string {
	if !b.ok {
		return "Box()"
	}
	return fmt.Sprintf("Box(%v)", b.value)
}
