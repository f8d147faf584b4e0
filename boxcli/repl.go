package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schrodinger/box"
	"github.com/npillmayer/schrodinger/internal/samples"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object. It operates on a list of string boxes.
type Intp struct {
	repl  *readline.Instance
	boxes []box.Box[string]
	last  box.Box[string] // result of the latest combine
}

// NewIntp creates an interpreter reading from repl. repl may be nil if
// commands are fed to Execute directly.
func NewIntp(repl *readline.Instance) *Intp {
	return &Intp{repl: repl, boxes: make([]box.Box[string], 0, 16)}
}

func (intp *Intp) String() string {
	if intp == nil || len(intp.boxes) == 0 {
		return "()"
	}
	return fmt.Sprintf("( %d boxes, %d present )", len(intp.boxes), intp.present())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.Execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	BOX
	EMPTY
	LIST
	REVERSE
	UPPER
	SQUARE
	SUM
	CONCAT
	SHORT
	UNWRAP
	CLEAR
	DEMO
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"box":     BOX,
	"empty":   EMPTY,
	"list":    LIST,
	"reverse": REVERSE,
	"upper":   UPPER,
	"square":  SQUARE,
	"sum":     SUM,
	"concat":  CONCAT,
	"short":   SHORT,
	"unwrap":  UNWRAP,
	"clear":   CLEAR,
	"demo":    DEMO,
}

var opNames = []string{
	"quit",
	"help",
	"box",
	"empty",
	"list",
	"reverse",
	"upper",
	"square",
	"sum",
	"concat",
	"short",
	"unwrap",
	"clear",
	"demo",
}

// parseCommand splits a line into a verb and an optional argument, e.g.
// "box hello world" or "short 10". Unknown verbs are turned into a request for help.
func parseCommand(line string) (*Op, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	if verb == "" {
		return nil, errors.New("empty command")
	}
	code, ok := opMap[strings.ToLower(verb)]
	if !ok {
		tracer().Infof("unknown command '%s'", verb)
		return &Op{code: HELP}, nil
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	tracer().Debugf("parsed command: %s '%s'", opNames[code], op.arg)
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	BOX:     boxOp,
	EMPTY:   emptyOp,
	LIST:    listOp,
	REVERSE: reverseOp,
	UPPER:   upperOp,
	SQUARE:  squareOp,
	SUM:     sumOp,
	CONCAT:  concatOp,
	SHORT:   shortOp,
	UNWRAP:  unwrapOp,
	CLEAR:   clearOp,
	DEMO:    demoOp,
}

// Execute runs a single operation. It returns stop=true if the interpreter
// should quit.
func (intp *Intp) Execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code: %d", op.code), false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func boxOp(intp *Intp, op *Op) (error, bool) {
	intp.boxes = append(intp.boxes, box.Of(op.arg))
	return nil, false
}

func emptyOp(intp *Intp, op *Op) (error, bool) {
	intp.boxes = append(intp.boxes, box.Empty[string]())
	return nil, false
}

func listOp(intp *Intp, op *Op) (error, bool) {
	printBoxes(intp.boxes)
	return nil, false
}

func clearOp(intp *Intp, op *Op) (error, bool) {
	intp.boxes = intp.boxes[:0]
	intp.last = box.Empty[string]()
	return nil, false
}

func demoOp(intp *Intp, op *Op) (error, bool) {
	printScenarios()
	return nil, false
}

// --- Transforms ------------------------------------------------------------

func reverseOp(intp *Intp, op *Op) (error, bool) {
	intp.transform(samples.Reverse)
	return nil, false
}

func upperOp(intp *Intp, op *Op) (error, bool) {
	intp.transform(samples.Upper)
	return nil, false
}

// squareOp squares every box holding a number. Boxes with non-numeric
// content become empty.
func squareOp(intp *Intp, op *Op) (error, bool) {
	for i, b := range intp.boxes {
		sq := box.Map(box.AndThen(b, samples.ParseNumber), samples.Square)
		intp.boxes[i] = box.Map(sq, samples.FormatNumber)
	}
	printBoxes(intp.boxes)
	return nil, false
}

func (intp *Intp) transform(f func(string) string) {
	for i, b := range intp.boxes {
		intp.boxes[i] = box.Apply(f, b)
	}
	printBoxes(intp.boxes)
}

// --- Combine and filter ----------------------------------------------------

// sumOp adds up all numeric boxes. Boxes not holding a number are ignored.
func sumOp(intp *Intp, op *Op) (error, bool) {
	numbers := make([]box.Box[float64], len(intp.boxes))
	for i, b := range intp.boxes {
		numbers[i] = box.AndThen(b, samples.ParseNumber)
	}
	sum := box.Combine(samples.Add, numbers)
	intp.last = box.Map(sum, samples.FormatNumber)
	pterm.Printf("sum = %s\n", intp.last)
	return nil, false
}

func concatOp(intp *Intp, op *Op) (error, bool) {
	intp.last = box.Combine(samples.Concat, intp.boxes)
	pterm.Printf("concat = %s\n", intp.last)
	return nil, false
}

func shortOp(intp *Intp, op *Op) (error, bool) {
	n := samples.ShortLength
	if op.arg != "" {
		var err error
		if n, err = strconv.Atoi(op.arg); err != nil || n < 0 {
			return fmt.Errorf("short: not a valid length: '%s'", op.arg), false
		}
	}
	before := len(intp.boxes)
	intp.boxes = box.Filter(samples.ShorterThan(n), intp.boxes)
	tracer().Infof("kept %d of %d boxes", len(intp.boxes), before)
	printBoxes(intp.boxes)
	return nil, false
}

func unwrapOp(intp *Intp, op *Op) (error, bool) {
	i, err := intp.checkIndex(op.arg)
	if err != nil {
		return err, false
	}
	v, err := intp.boxes[i].Unwrap()
	if err != nil {
		return err, false
	}
	pterm.Printf("[%d] = %q\n", i, v)
	return nil, false
}

// ----------------------------------------------------------------------

var ERR_NO_BOXES = errors.New("no boxes")

func (intp *Intp) checkIndex(arg string) (int, error) {
	if len(intp.boxes) == 0 {
		return -1, ERR_NO_BOXES
	}
	i, err := strconv.Atoi(arg)
	if err != nil {
		return -1, fmt.Errorf("not a box index: '%s'", arg)
	}
	if i < 0 || i >= len(intp.boxes) {
		return -1, fmt.Errorf("box index out of range [0..%d]: %d", len(intp.boxes)-1, i)
	}
	return i, nil
}

func (intp *Intp) present() int {
	n := 0
	for _, b := range intp.boxes {
		if b.IsPresent() {
			n++
		}
	}
	return n
}
