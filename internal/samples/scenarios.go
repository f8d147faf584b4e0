package samples

import (
	"fmt"

	"github.com/npillmayer/schrodinger/box"
)

// Scenario is a named demonstration of one of the box combinators.
type Scenario struct {
	Name string
	Run  func() string // renders the result of the scenario
}

// Scenarios returns the demonstrations in a fixed order.
func Scenarios() []Scenario {
	return []Scenario{
		{"fiveSquared", fiveSquared},
		{"eightPlusFivePlusFive", eightPlusFivePlusFive},
		{"oof", oof},
		{"filteredList", filteredList},
		{"combineNothing", combineNothing},
	}
}

func fiveSquared() string {
	five := box.Of(5.0)
	return box.Apply(Square, five).String()
}

func eightPlusFivePlusFive() string {
	five, eight := box.Of(5.0), box.Of(8.0)
	return box.Combine(Add, []box.Box[float64]{eight, five, five}).String()
}

func oof() string {
	return box.Apply(Reverse, box.Of("foo")).String()
}

func filteredList() string {
	shortString := box.Of("short string")
	reallyShortString := box.Of("!")
	longString := box.Of("this is a considerably longer string")
	filtered := box.Filter(Short, []box.Box[string]{shortString, longString, reallyShortString})
	return fmt.Sprint(filtered)
}

func combineNothing() string {
	return box.Combine(Add, nil).String()
}
