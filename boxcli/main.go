package main

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'schrodinger.cli'
func tracer() tracing.Trace {
	return tracing.Select("schrodinger.cli")
}

func main() {
	initDisplay()

	commando.
		SetExecutableName("boxcli").
		SetVersion("v0.1.0").
		SetDescription("Play with optional values: boxes which either hold a value or are empty.")

	commando.
		Register("demo").
		SetDescription("Run the standard box demonstrations and print their results.").
		SetShortDescription("print demonstrations").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runDemoCommand)

	commando.
		Register("repl").
		SetDescription("Start an interactive workbench over a list of string boxes.").
		SetShortDescription("interactive mode").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Info").
		SetAction(runReplCommand)

	commando.Parse(nil)
}

func runDemoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing()
	setTraceLevel(mustFlagString(flags["trace"], "trace"))
	printScenarios()
}

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	tlevel := mustFlagString(flags["trace"], "trace")
	setupTracing()
	setTraceLevel("Error") // will set the correct level later
	pterm.Info.Println("Welcome to the box workbench") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("box > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	intp := NewIntp(repl)
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D or 'quit'") // inform user how to stop the CLI
	setTraceLevel(tlevel)
	tracer().Infof("Trace level is %s", tlevel)
	intp.REPL() // go into interactive mode
}

// setupTracing routes all tracers to Go's log package.
func setupTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.schrodinger.cli": "Info",
		"trace.schrodinger.box": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// setTraceLevel sets the level for both the CLI and the box tracer.
func setTraceLevel(level string) {
	l := tracing.LevelError
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	case "Error":
	default:
		fatalf("invalid trace level: %s", level)
	}
	tracer().SetTraceLevel(l)
	tracing.Select("schrodinger.box").SetTraceLevel(l)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "boxcli: "+format+"\n", args...)
	os.Exit(1)
}
