// Package repl implements Orion's interactive Read-Eval-Print Loop,
// grounded directly in the teacher's repl.Repl (readline for line editing
// and history, fatih/color for feedback) but re-targeted at Orion's own
// lexer/parser/eval pipeline and a persistent eval.Evaluator instead of a
// fresh one per line.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"orionlang/orion/eval"
	"orionlang/orion/internal/config"
	"orionlang/orion/object"
	"orionlang/orion/orionerr"
	"orionlang/orion/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session, configured from the loaded Config.
type Repl struct {
	cfg *config.Config
}

// New creates a Repl from cfg.
func New(cfg *config.Config) *Repl {
	return &Repl{cfg: cfg}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 66)
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", r.cfg.Banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "Version: %s\n", r.cfg.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type Orion code and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop until '.exit', EOF, or a readline error.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.cfg.Prompt,
		HistoryFile: r.cfg.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := eval.New(w, strings.NewReader(""))

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good bye!\n")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good bye!\n")
			return nil
		}
		r.evalLine(w, ev, line)
	}
}

func (r *Repl) evalLine(w io.Writer, ev *eval.Evaluator, line string) {
	prog, err := parser.Parse(line)
	if err != nil {
		r.printError(w, err)
		return
	}

	v, rerr := ev.EvalLine(prog)
	if rerr != nil {
		r.printError(w, rerr)
		return
	}
	if v != nil && v.Type() != object.NullType {
		yellowColor.Fprintf(w, "%s\n", v.Inspect())
	}
}

func (r *Repl) printError(w io.Writer, err error) {
	if oerr, ok := err.(*orionerr.Error); ok {
		redColor.Fprintf(w, "%s\n", oerr.Error())
		return
	}
	redColor.Fprintf(w, "%s\n", err.Error())
}
