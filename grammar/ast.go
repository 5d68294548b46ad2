// Package grammar loads the rule notation that defines a concrete syntax.
// A grammar is a list of rules of the form Name = Body; bodies combine
// rule references and single-quoted token literals with juxtaposition,
// alternation |, postfix ? and *, grouping ( ), and field labels
// label:Atom. Newlines carry no meaning: a body extends until the next
// top-level Name = or the end of input. Comments run from // to the end
// of the line and are discarded.
package grammar

// Grammar is a parsed rule set in declaration order.
type Grammar struct {
	Rules []*Rule
	index map[string]*Rule
}

// Rule returns the named rule, or nil when the grammar does not define it.
func (g *Grammar) Rule(name string) *Rule {
	return g.index[name]
}

// Rule binds a name to a body expression.
type Rule struct {
	Name string
	Pos  Position
	Body Body
}

// Body is one node of a rule body expression.
type Body interface {
	body()
}

// Literal matches a single source token by its quoted text.
type Literal struct {
	Text string
	Pos  Position
}

// Ref matches the named rule.
type Ref struct {
	Name string
	Pos  Position
}

// Seq matches its items in order.
type Seq struct {
	Items []Body
}

// Alt matches exactly one of its branches.
type Alt struct {
	Branches []Body
}

// Opt matches its body zero or one times.
type Opt struct {
	Body Body
}

// Rep matches its body zero or more times.
type Rep struct {
	Body Body
}

// Labeled names the field its body contributes to the enclosing rule.
type Labeled struct {
	Label string
	Pos   Position
	Body  Body
}

func (*Literal) body() {}
func (*Ref) body()     {}
func (*Seq) body()     {}
func (*Alt) body()     {}
func (*Opt) body()     {}
func (*Rep) body()     {}
func (*Labeled) body() {}
