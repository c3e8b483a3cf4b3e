package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calc/num"
)

// Result is the outcome of evaluating one line.
type Result struct {
	// Num is the value of a numeric statement.
	Num num.Number
	// Truth is the value of a condition. It is meaningful only if IsBool.
	Truth  bool
	IsBool bool
	// Func is the function a definition created.
	Func *Function
}

// String formats the result plainly: a number, true or false, or the
// signature of a defined function.
func (r *Result) String() string {
	switch {
	case r.Func != nil:
		return "function " + r.Func.signature()
	case r.IsBool:
		return strconv.FormatBool(r.Truth)
	}
	return r.Num.String()
}

// Marked formats the result with the interactive markers: "< " before values
// and "# function name(arity) " for definitions.
func (r *Result) Marked() string {
	if r.Func != nil {
		return "# function " + r.Func.signature() + " "
	}
	return "< " + r.String()
}

// Eval evaluates the statement at the top level.
func (s *Stmt) Eval() (*Result, error) {
	if f := s.Func(); f != nil {
		return &Result{Func: f}, nil
	}
	if s.IsCondition() {
		t, err := truth(s.n, nil)
		if err != nil {
			return nil, err
		}
		return &Result{Truth: t, IsBool: true}, nil
	}
	v, err := value(s.n, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Num: v}, nil
}

// Interpreter parses and evaluates lines, keeping function definitions
// between them.
type Interpreter struct {
	p *Parser
}

// NewInterpreter creates an interpreter.
func NewInterpreter(opts ...ParseOption) *Interpreter {
	return &Interpreter{p: NewParser(opts...)}
}

// Parser returns the interpreter's parser.
func (in *Interpreter) Parser() *Parser {
	return in.p
}

// Eval parses and evaluates one line. If the line begins a construct that
// continues on later lines, Eval reads them from the parser's source.
func (in *Interpreter) Eval(line string) (*Result, error) {
	s, err := in.Parse(line)
	if err != nil {
		return nil, err
	}
	return s.Eval()
}

// Parse parses one line without evaluating it.
func (in *Interpreter) Parse(line string) (*Stmt, error) {
	in.p.Append(line)
	return in.p.ParseLine()
}

// Run evaluates every line from src, reading continuation lines from src as
// well, and passes each outcome to report. The statement is nil when the line
// fails to parse. Blank lines are skipped. Run returns nil when src is
// exhausted, or the first error from src otherwise. Errors in parsing or
// evaluating lines go to report and do not stop Run.
func (in *Interpreter) Run(src LineSource, report func(*Stmt, *Result, error)) error {
	saved := in.p.src
	in.p.src = src
	defer func() { in.p.src = saved }()
	for {
		line, err := src.NextLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		st, err := in.Parse(line)
		if err != nil {
			report(nil, nil, err)
			continue
		}
		r, err := st.Eval()
		report(st, r, err)
	}
}
