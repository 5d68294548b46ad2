// Package model builds the semantic description of a grammar: which shape
// each rule has and which typed fields it exposes. The model is the input
// to code generation and is fully deterministic: rule, field, variant, and
// token orders all derive from declaration order in the source notation.
package model

// Shape classifies what kind of node type a rule generates.
type Shape int

const (
	// Product rules generate a struct wrapper with one accessor per field.
	Product Shape = iota
	// Sum rules (alternations of bare rule references) generate an
	// interface over their variants.
	Sum
	// TokenEnum rules (alternations of bare token literals) generate a
	// wrapper over a single token drawn from a fixed literal set.
	TokenEnum
)

var shapeNames = map[Shape]string{
	Product:   "Product",
	Sum:       "Sum",
	TokenEnum: "TokenEnum",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Cardinality says how many matching children a field can have.
type Cardinality int

const (
	One Cardinality = iota
	Optional
	Many
)

var cardinalityNames = map[Cardinality]string{
	One:      "One",
	Optional: "Optional",
	Many:     "Many",
}

func (c Cardinality) String() string {
	if name, ok := cardinalityNames[c]; ok {
		return name
	}
	return "Unknown"
}

func maxCard(a, b Cardinality) Cardinality {
	if a > b {
		return a
	}
	return b
}

// TargetKind says what a field target points at.
type TargetKind int

const (
	TargetRule TargetKind = iota
	TargetToken
)

// Target is one alternative a field value can be: a rule's node type or a
// token literal. Most fields have exactly one target; fields lowered from
// alternations inside a product rule have several.
type Target struct {
	Kind    TargetKind
	Rule    string // rule name when Kind == TargetRule
	Literal string // token text when Kind == TargetToken
}

func (t Target) String() string {
	if t.Kind == TargetToken {
		return "'" + t.Literal + "'"
	}
	return t.Rule
}

// Field is one accessor of a Product rule.
type Field struct {
	Name     string
	Card     Cardinality
	Targets  []Target
	Inferred bool // name derived from the target instead of a label
}

// Collision records that several fields of one rule wanted the same name.
// The first occurrence kept its direct accessor; the rest are reachable
// through a sequence accessor that yields every occurrence in tree order.
// Accessor is empty when even the sequence accessor's name was taken.
type Collision struct {
	Field    string
	Accessor string
	Count    int
	Targets  []Target
}

// TokenInfo names one distinct token literal of the grammar. Name is the
// kind base name (fn → FnKw, ( → LParen, ident → Ident).
type TokenInfo struct {
	Literal string
	Name    string
}

// Rule is the semantic description of one grammar rule.
type Rule struct {
	Name       string
	Shape      Shape
	Variants   []string    // Sum: variant names in declaration order, duplicates preserved
	Literals   []string    // TokenEnum: alternative literals in declaration order
	Fields     []Field     // Product: fields in lowering order
	Collisions []Collision // Product: suppressed duplicate field names
}

// Model is the semantic description of a whole grammar.
type Model struct {
	Rules  []*Rule
	Tokens []TokenInfo // distinct literals in first-appearance order
	byName map[string]*Rule
}

// Rule returns the named rule model, or nil.
func (m *Model) Rule(name string) *Rule {
	return m.byName[name]
}

// Concretes lists the concrete (non-Sum) rules a value of the named rule
// can be at runtime: the rule itself for Product and TokenEnum rules, and
// the transitive expansion of variants for Sum rules. First occurrence in
// a depth-first walk wins; cycles between sums terminate.
func (m *Model) Concretes(name string) []string {
	var out []string
	seen := make(map[string]bool)
	visiting := make(map[string]bool)
	var visit func(string)
	visit = func(n string) {
		rule := m.byName[n]
		if rule == nil || visiting[n] {
			return
		}
		if rule.Shape != Sum {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
			return
		}
		visiting[n] = true
		for _, v := range rule.Variants {
			visit(v)
		}
		visiting[n] = false
	}
	visit(name)
	return out
}

// SumsContaining lists the Sum rules whose concrete expansion includes the
// named rule, in declaration order. Code generation uses it to attach
// interface marker methods.
func (m *Model) SumsContaining(name string) []string {
	var out []string
	for _, rule := range m.Rules {
		if rule.Shape != Sum {
			continue
		}
		for _, c := range m.Concretes(rule.Name) {
			if c == name {
				out = append(out, rule.Name)
				break
			}
		}
	}
	return out
}
