package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "combine", "sum", "concat":
		pterm.Info.Println("Combine")
		pterm.Println(`
	Combine folds the values of all non-empty boxes from left to right.
	The first present value is the seed, empty boxes are skipped:
	+--------+--------+--------+--------+
	| Box(8) | Box()  | Box(5) | Box(5) |   sum  ->  Box(18)
	+--------+--------+--------+--------+
	If no box holds a value, the result is Box().
	'sum' only looks at boxes holding a number; 'concat' joins all strings.
	`)
	case "filter", "short":
		pterm.Info.Println("Filter")
		pterm.Println(`
	Filter keeps the non-empty boxes satisfying a predicate, in order.
	'short n' keeps boxes holding less than n characters (default 15).
	Empty boxes are always dropped.
	`)
	case "apply", "reverse", "upper", "square":
		pterm.Info.Println("Apply")
		pterm.Println(`
	Apply transforms the value of every non-empty box. Empty boxes stay empty.
	'square' parses numbers first; boxes not holding a number become empty.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	box <text>     add a box holding <text>
	empty          add an empty box
	list           show all boxes
	reverse        reverse the text of every box
	upper          upper-case the text of every box
	square         square every number
	sum            add up all numbers
	concat         join all texts
	short [n]      keep boxes shorter than n characters
	unwrap <i>     show the value of box #i
	clear          remove all boxes
	demo           run the demonstrations
	help [topic]   topics: apply, combine, filter
	quit           leave
	`)
	}
}
