package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/calc"
)

const (
	promptMain = "> "
	promptCont = ". "
)

type flags struct {
	in         string
	history    string
	marked     bool
	echo       bool
	noBuiltins bool
	ascii      bool
	color      bool
}

func (f *flags) asCliFlags() []cli.Flag {
	home, _ := os.UserHomeDir()
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "in",
			Usage:       "evaluate lines from a file (- for stdin) instead of prompting",
			Destination: &f.in,
		},
		&cli.StringFlag{
			Name:        "history",
			Value:       filepath.Join(home, ".calc_history"),
			Usage:       "interactive history file, or empty to disable",
			Destination: &f.history,
		},
		&cli.BoolFlag{
			Name:        "marked",
			Usage:       "prefix results with < and definitions with #",
			Destination: &f.marked,
		},
		&cli.BoolFlag{
			Name:        "echo",
			Usage:       "print parse trees",
			Destination: &f.echo,
		},
		&cli.BoolFlag{
			Name:        "no-builtins",
			Usage:       "disable builtin functions and constants",
			Destination: &f.noBuiltins,
		},
		&cli.BoolFlag{
			Name:        "ascii",
			Usage:       "disable Unicode operator spellings",
			Destination: &f.ascii,
		},
		&cli.BoolFlag{
			Name:        "color",
			Value:       true,
			Usage:       "print errors in color",
			Destination: &f.color,
		},
	}
}

func main() {
	log.SetFlags(0)
	var f flags
	app := &cli.App{
		Name:      "calc",
		Usage:     "Interactive calculator for naturals, integers, rationals, reals, and complex numbers.",
		ArgsUsage: "[expression...]",
		Flags:     f.asCliFlags(),
		Action: func(c *cli.Context) error {
			color.NoColor = color.NoColor || !f.color
			if c.Args().Present() {
				return args(&f, c.Args().Slice())
			}
			if f.in != "" {
				return batch(&f)
			}
			return repl(&f)
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func options(f *flags, src calc.LineSource) []calc.ParseOption {
	opts := []calc.ParseOption{calc.Source(src)}
	if f.noBuiltins {
		opts = append(opts, calc.DisableBuiltins())
	}
	if f.ascii {
		opts = append(opts, calc.ASCIIOnly())
	}
	return opts
}

// printer writes results to stdout and errors to stderr.
type printer struct {
	f   *flags
	red func(a ...interface{}) string
}

func newPrinter(f *flags) *printer {
	return &printer{f: f, red: color.New(color.FgRed).SprintFunc()}
}

func (p *printer) report(s *calc.Stmt, r *calc.Result, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, p.red(err.Error()))
		return
	}
	if p.f.echo {
		fmt.Printf("%v : ", s)
	}
	if p.f.marked {
		fmt.Println(r.Marked())
		return
	}
	fmt.Println(r.String())
}

func batch(f *flags) error {
	r := io.Reader(os.Stdin)
	if f.in != "-" {
		file, err := os.Open(f.in)
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer file.Close()
		r = file
	}
	src := calc.ScanLines(r)
	in := calc.NewInterpreter(options(f, src)...)
	if err := in.Run(src, newPrinter(f).report); err != nil {
		return errors.Wrapf(err, "reading %s", f.in)
	}
	return nil
}

// args evaluates each command-line argument as a line. Later arguments
// continue incomplete earlier ones.
func args(f *flags, exprs []string) error {
	src := calc.Lines(exprs...)
	in := calc.NewInterpreter(options(f, src)...)
	return in.Run(src, newPrinter(f).report)
}

// prompter reads continuation lines from the terminal.
type prompter struct {
	ln *liner.State
}

func (p prompter) NextLine() (string, error) {
	line, err := p.ln.Prompt(promptCont)
	if err == nil {
		p.ln.AppendHistory(line)
	}
	return line, err
}

func repl(f *flags) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f.history != "" {
		if file, err := os.Open(f.history); err == nil {
			if _, err := ln.ReadHistory(file); err != nil {
				log.Println(errors.Wrap(err, "reading history"))
			}
			file.Close()
		}
		defer func() {
			file, err := os.Create(f.history)
			if err != nil {
				log.Println(errors.Wrap(err, "saving history"))
				return
			}
			if _, err := ln.WriteHistory(file); err != nil {
				log.Println(errors.Wrap(err, "saving history"))
			}
			file.Close()
		}()
	}

	in := calc.NewInterpreter(options(f, prompter{ln})...)
	p := newPrinter(f)
	for {
		line, err := ln.Prompt(promptMain)
		switch {
		case err == io.EOF:
			fmt.Println()
			return nil
		case err == liner.ErrPromptAborted:
			continue
		case err != nil:
			return errors.Wrap(err, "reading input")
		}
		if isBlank(line) {
			continue
		}
		ln.AppendHistory(line)
		s, res, err := eval(in, line)
		p.report(s, res, err)
	}
}

func eval(in *calc.Interpreter, line string) (*calc.Stmt, *calc.Result, error) {
	s, err := in.Parse(line)
	if err != nil {
		return nil, nil, err
	}
	r, err := s.Eval()
	return s, r, err
}

func isBlank(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}
