/*
Package samples holds client operations used to demonstrate package box:
arithmetic on numbers, string transforms and a length filter.

None of these belong to the box contract; they are ordinary functions with
the shapes box.Apply, box.Combine and box.Filter expect.
*/
package samples

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/schrodinger/box"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ShortLength is the rune count a string has to stay below to pass Short.
const ShortLength = 15

// Square is a transform for numeric boxes.
func Square(x float64) float64 {
	return x * x
}

// Add is an associative reducer for numeric boxes.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract is a non-associative reducer, i.e. box.Combine will depend on
// the order of its input.
func Subtract(a, b float64) float64 {
	return a - b
}

// Reverse returns s with its runes in reverse order. s is NFC-normalized
// first, so that decomposed accents stay with their base letter wherever a
// precomposed form exists.
func Reverse(s string) string {
	r := []rune(norm.NFC.String(s))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Upper maps s to upper case, language-neutral.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Concat is a string reducer.
func Concat(a, b string) string {
	return a + b
}

// ShorterThan returns a predicate which holds for strings of less than n runes.
func ShorterThan(n int) func(string) bool {
	return func(s string) bool {
		return utf8.RuneCountInString(s) < n
	}
}

// Short holds for strings of less than ShortLength runes.
var Short = ShorterThan(ShortLength)

// ParseNumber reads s as a floating point number. Text which is not a number
// results in an empty box.
func ParseNumber(s string) box.Box[float64] {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return box.Empty[float64]()
	}
	return box.Of(x)
}

// FormatNumber is the inverse of ParseNumber, using the shortest
// representation.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
