package calc

import (
	"sort"
	"strconv"
	"strings"
)

// Function is a user-defined function.
type Function struct {
	// Name is the function's name.
	Name string
	// Params are the function's parameters in order.
	Params []Param
	// Returns are the return type annotations following the arrow, if any.
	Returns []string

	body *node
}

// Param is a function parameter. Type is the annotation after the colon, or
// the empty string if there is none. Annotations are recorded but not
// checked.
type Param struct {
	Name, Type string
}

// Arity returns the number of parameters of f.
func (f *Function) Arity() int {
	return len(f.Params)
}

// String formats the function's signature, e.g. "hello(num: integer) ->
// integer".
func (f *Function) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.Type != "" {
			b.WriteString(": ")
			b.WriteString(p.Type)
		}
	}
	b.WriteByte(')')
	if len(f.Returns) > 0 {
		b.WriteString(" -> ")
		b.WriteString(strings.Join(f.Returns, ", "))
	}
	return b.String()
}

// Body formats the function's body statement.
func (f *Function) Body() string {
	return f.body.String()
}

// param returns the index of the parameter named name, or -1.
func (f *Function) param(name string) int {
	for i, p := range f.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// signature is the marked form of a definition, "name(arity)".
func (f *Function) signature() string {
	return f.Name + "(" + strconv.Itoa(f.Arity()) + ")"
}

// Functions is a table of user-defined functions. The zero value is an empty
// table ready to use. Redefining a name replaces the previous definition for
// calls parsed afterward; calls parsed earlier keep the definition they
// resolved to.
type Functions struct {
	m map[string]*Function
}

// Lookup returns the function named name, or nil if there is none.
func (t *Functions) Lookup(name string) *Function {
	return t.m[name]
}

// Len returns the number of functions defined.
func (t *Functions) Len() int {
	return len(t.m)
}

// Names returns the names of all defined functions in sorted order.
func (t *Functions) Names() []string {
	r := make([]string, 0, len(t.m))
	for k := range t.m {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

func (t *Functions) define(f *Function) {
	if t.m == nil {
		t.m = make(map[string]*Function)
	}
	t.m[f.Name] = f
}
