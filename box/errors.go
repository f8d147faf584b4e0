package box

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrEmptyValue is matched by every *EmptyValueError when tested with errors.Is.
var ErrEmptyValue = errors.New("box: empty value")

// EmptyValueError is the error reported when the value of an empty box is
// requested by Unwrap or MustUnwrap.
type EmptyValueError struct {
	Type string // element type of the box, e.g. "float64"
}

// Error implements the error interface.
func (e *EmptyValueError) Error() string {
	if e.Type == "" {
		return "box: unwrap of empty Box"
	}
	return fmt.Sprintf("box: unwrap of empty Box[%s]", e.Type)
}

// Is makes errors.Is(err, ErrEmptyValue) succeed.
func (e *EmptyValueError) Is(target error) bool {
	return target == ErrEmptyValue
}

func emptyValueError[T any]() *EmptyValueError {
	return &EmptyValueError{Type: reflect.TypeOf((*T)(nil)).Elem().String()}
}
