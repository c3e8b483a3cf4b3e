package calc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(p *Parser)
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt  map[string]Func
	sourceopt struct{ src LineSource }
	asciiopt  struct{}
)

// ParseFunc sets a builtin function for parsing. To disable parsing a
// builtin, pass nil for fn. User-defined functions with the same name take
// priority over builtins.
func ParseFunc(name string, fn Func) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p *Parser) {
	p.setBuiltin(o.name, o.fn)
}

// ParseFuncs sets a group of builtin functions for parsing. To disable parsing
// any function, set it to nil.
func ParseFuncs(fns map[string]Func) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p *Parser) {
	for k, v := range o {
		p.setBuiltin(k, v)
	}
}

// DisableBuiltins disables all default builtin functions.
func DisableBuiltins() ParseOption {
	return ParseFuncs(DisableDefaultFuncs())
}

// Source sets the source of continuation lines. When a line ends inside a
// function definition or if statement, the parser blocks on src for the next
// line. Without a source, such lines fail with *IncompleteError.
func Source(src LineSource) ParseOption {
	return sourceopt{src}
}

func (o sourceopt) parseOption(p *Parser) {
	p.src = o.src
}

// ASCIIOnly disables the Unicode spellings of operators, e.g. ≤ and ≠.
func ASCIIOnly() ParseOption {
	return asciiopt{}
}

func (asciiopt) parseOption(p *Parser) {
	p.lex.ascii = true
}
