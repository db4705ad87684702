package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/speclex"
	"github.com/npillmayer/speclex/catalog"
	"github.com/npillmayer/speclex/scanner"
)

// main() starts an interactive CLI ("TOK.REPL"), where users may enter lines
// of text. TOK.REPL will tokenize each line with the currently selected spec
// ordering and print out the tokens.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	cat := flag.String("catalog", "default", "Spec ordering [default|datetime|numeric|full]")
	initf := flag.String("init", "", "Initial load")
	plain := flag.Bool("plain", false, "Plain output, one token per line")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to TOK.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	intp := &Intp{
		registry: catalog.Default(),
		plain:    *plain,
		out:      os.Stdout,
	}
	if err := intp.selectOrdering(*cat); err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" { // tokenize command line arguments and exit
		if err := intp.Tokenize(input); err != nil {
			os.Exit(1)
		}
		return
	}
	repl, err := readline.New("tok> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	registry *catalog.Registry
	ordering string
	specs    []*speclex.TokenSpec
	repl     *readline.Instance
	plain    bool
	out      io.Writer
}

var errQuit = errors.New("quit")

func (intp *Intp) selectOrdering(name string) error {
	switch strings.ToLower(name) {
	case "default":
		intp.specs = intp.registry.DefaultSpecs()
	case "datetime":
		intp.specs = intp.registry.DateTimeSpecs()
	case "numeric":
		intp.specs = intp.registry.NumericSpecs()
	case "full":
		intp.specs = intp.registry.FullSpecs()
	default:
		return fmt.Errorf("unknown spec ordering: %q", name)
	}
	intp.ordering = strings.ToLower(name)
	tracer().Infof("Using %s ordering with %d specs", intp.ordering, len(intp.specs))
	return nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	lines := bufio.NewScanner(f)
	lineno := 1
	for lines.Scan() {
		line := lines.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil && err != errQuit {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err = intp.Eval(line); err == errQuit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or tokenizes a line of input.
func (intp *Intp) Eval(line string) error {
	if !strings.HasPrefix(line, ":") {
		return intp.Tokenize(line)
	}
	args := strings.Fields(line[1:])
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "quit", "q":
		return errQuit
	case "catalog":
		if len(args) != 2 {
			err := errors.New("usage: :catalog <default|datetime|numeric|full>")
			pterm.Error.Println(err.Error())
			return err
		}
		if err := intp.selectOrdering(args[1]); err != nil {
			pterm.Error.Println(err.Error())
			return err
		}
	case "specs":
		intp.printSpecs()
	case "names":
		names := make([]string, 0, len(intp.registry.Names()))
		for _, n := range intp.registry.Names() {
			names = append(names, string(n))
		}
		pterm.Info.Println(strings.Join(names, " "))
	case "help", "h":
		pterm.Info.Println(":catalog <name> | :specs | :names | :help | :quit")
	default:
		err := fmt.Errorf("unknown command: %s", args[0])
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// Tokenize runs line through a scanner for the current ordering and prints
// the tokens. A conversion error is printed after the tokens scanned so far.
func (intp *Intp) Tokenize(line string) error {
	sc, err := scanner.New(line, intp.specs)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	tokens, err := scanner.Collect(sc)
	intp.printTokens(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func (intp *Intp) printTokens(tokens []speclex.Token) {
	if intp.plain {
		typ := color.New(color.FgCyan, color.Bold).SprintFunc()
		pos := color.New(color.FgHiBlack).SprintFunc()
		for _, t := range tokens {
			fmt.Fprintf(intp.out, "%-12s %-24q %v %s\n", typ(t.Type), t.Lexeme, t.Value,
				pos(fmt.Sprintf("@%d:%d", t.Line, t.Column)))
		}
		return
	}
	data := pterm.TableData{{"Type", "Lexeme", "Value", "Position", "Span"}}
	for _, t := range tokens {
		data = append(data, []string{
			string(t.Type),
			fmt.Sprintf("%q", t.Lexeme),
			fmt.Sprintf("%v", t.Value),
			fmt.Sprintf("%d:%d", t.Line, t.Column),
			t.Span.String(),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot render token table: %v", err)
	}
}

func (intp *Intp) printSpecs() {
	pterm.Info.Printf("%s ordering\n", intp.ordering)
	for i, spec := range intp.specs {
		discard := ""
		if spec.IsDiscarded() {
			discard = " (discarded)"
		}
		fmt.Fprintf(intp.out, "%2d  %s%s\n", i+1, spec.Type(), discard)
	}
}
