/*
Package box provides optional values: a Box either holds exactly one value
of some type T, or it is empty.

Boxes are plain values. Nothing in this package mutates a box after it has been
constructed; every combinator returns fresh boxes (or, for Filter, a fresh slice).

# Construction

	five := box.Of(5.0)          // Box(5)
	none := box.Empty[float64]() // Box()

Emptiness is a property of the box alone and never inferred from the payload.
Wrapping a nil pointer, nil slice or nil interface with Of yields a populated
box:

	var p *Node
	box.Of(p).IsEmpty() // false

# Combinators

Apply and Map transform a single box, Combine folds a sequence of boxes with
an associative reducer, and Filter selects from a sequence of boxes:

	squared := box.Apply(func(x float64) float64 { return x * x }, five)
	sum := box.Combine(func(a, b float64) float64 { return a + b },
	    []box.Box[float64]{box.Of(8.0), five, five})
	short := box.Filter(func(s string) bool { return len(s) < 15 }, words)

Empty boxes never cause a combinator to fail. Apply on an empty box yields an
empty box, Combine and Filter silently skip empty entries. The only operation
which reports absence as an error is Unwrap (and its panicking sibling MustUnwrap).

Combine applies its reducer strictly left to right, seeded with the first
present value. Non-associative reducers therefore give order-dependent, but
reproducible, results.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package box

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'schrodinger.box'
func tracer() tracing.Trace {
	return tracing.Select("schrodinger.box")
}
