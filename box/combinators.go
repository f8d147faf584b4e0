package box

// Apply transforms the value of b with f and returns it in a new box.
// If b is empty, f is not called and an empty box is returned.
func Apply[T any](f func(T) T, b Box[T]) Box[T] {
	return Map(b, f)
}

// Map transforms the value of b, possibly changing its type.
// If b is empty, f is not called and an empty box is returned.
func Map[T any, U any](b Box[T], f func(T) U) Box[U] {
	if b.ok {
		return Of(f(b.value))
	}
	return Empty[U]()
}

// AndThen chains a transformation which may itself produce an empty box,
// e.g. a parser. If b is empty, f is not called.
func AndThen[T any, U any](b Box[T], f func(T) Box[U]) Box[U] {
	if b.ok {
		return f(b.value)
	}
	return Empty[U]()
}

// Combine folds the values of all non-empty boxes with reducer r, from left
// to right. The first present value seeds the fold; r is called once for every
// further present value. Empty boxes are skipped.
//
// The result is empty if boxes holds no present value, including the case
// of len(boxes) == 0.
func Combine[T any](r func(T, T) T, boxes []Box[T]) Box[T] {
	acc := Empty[T]()
	for _, b := range boxes {
		acc = combineStep(r, acc, b)
	}
	tracer().Debugf("combine: folded %d boxes into %s", len(boxes), acc)
	return acc
}

// combineStep is one step of Combine's fold.
func combineStep[T any](r func(T, T) T, acc, b Box[T]) Box[T] {
	switch {
	case !b.ok:
		return acc
	case !acc.ok:
		return b
	}
	return Of(r(acc.value, b.value))
}

// Filter returns the non-empty boxes of the input for which predicate p holds,
// in input order. Empty boxes are dropped without calling p.
// The input slice is not modified; the result is never nil.
func Filter[T any](p func(T) bool, boxes []Box[T]) []Box[T] {
	selected := make([]Box[T], 0, len(boxes))
	for _, b := range boxes {
		if !b.ok {
			continue
		}
		if p(b.value) {
			selected = append(selected, b)
		}
	}
	tracer().Debugf("filter: selected %d of %d boxes", len(selected), len(boxes))
	return selected
}
