// Package codegen emits the typed AST layer for a grammar model: a kinds
// file declaring one syntree.Kind per token and per concrete rule, and a
// nodes file declaring one wrapper type per rule with accessors for its
// fields. Output is deterministic: the same model and options produce
// byte-identical files.
//
// The generated code assumes the destination package declares the Node
// interface and the Token wrapper (see the ast package for the canonical
// support file).
package codegen

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/sable-lang/sable/model"
)

// Options configures generation.
type Options struct {
	// PackageName is the package clause of the generated files.
	PackageName string

	// SyntreeImport is the import path of the syntax tree package the
	// generated wrappers navigate.
	SyntreeImport string

	// KindsFile and NodesFile name the generated files. Empty means
	// kinds.go and nodes.go.
	KindsFile string
	NodesFile string
}

func (o Options) withDefaults() Options {
	if o.KindsFile == "" {
		o.KindsFile = "kinds.go"
	}
	if o.NodesFile == "" {
		o.NodesFile = "nodes.go"
	}
	return o
}

func (o Options) validate() error {
	if o.PackageName == "" {
		return fmt.Errorf("codegen: package name is required")
	}
	if o.SyntreeImport == "" {
		return fmt.Errorf("codegen: syntree import path is required")
	}
	return nil
}

// File is one generated source file.
type File struct {
	Name    string
	Content []byte
}

// Generate emits the kinds file and the nodes file for a model.
func Generate(m *model.Model, opts Options) ([]File, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	g := newGenerator(m, opts)
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	return []File{
		{Name: opts.KindsFile, Content: g.kindsFile()},
		{Name: opts.NodesFile, Content: g.nodesFile()},
	}, nil
}

type generator struct {
	m    *model.Model
	opts Options

	// tokens maps a literal to its kind name, products lists the type
	// names of the rules that own a node kind, in declaration order.
	tokens   map[string]string
	products []string
}

func newGenerator(m *model.Model, opts Options) *generator {
	g := &generator{m: m, opts: opts, tokens: make(map[string]string, len(m.Tokens))}
	for _, tok := range m.Tokens {
		g.tokens[tok.Literal] = tok.Name
	}
	for _, rule := range m.Rules {
		if rule.Shape == model.Product {
			g.products = append(g.products, strcase.ToCamel(rule.Name))
		}
	}
	return g
}

// supportNames are declared by the destination package's handwritten
// support file; a rule with one of these type names cannot be generated.
var supportNames = map[string]bool{
	"Node":      true,
	"Token":     true,
	"Text":      true,
	"DebugName": true,
	"TokenKind": true,
}

// checkNames rejects grammars whose generated identifiers would collide:
// two rules with the same type name, a rule named like a support
// identifier, or a rule kind constant matching a token kind constant.
func (g *generator) checkNames() error {
	types := make(map[string]string, len(g.m.Rules))
	for _, rule := range g.m.Rules {
		name := strcase.ToCamel(rule.Name)
		if supportNames[name] {
			return fmt.Errorf("codegen: rule %s collides with the support identifier %s", rule.Name, name)
		}
		if prev, ok := types[name]; ok {
			return fmt.Errorf("codegen: rules %s and %s produce the same type name %s", prev, rule.Name, name)
		}
		types[name] = rule.Name
	}

	kinds := map[string]string{"Error": "the built-in Error kind", "Whitespace": "the built-in Whitespace kind", "Comment": "the built-in Comment kind"}
	for _, tok := range g.m.Tokens {
		if prev, ok := kinds[tok.Name]; ok {
			return fmt.Errorf("codegen: token %q and %s produce the same constant Kind%s", tok.Literal, prev, tok.Name)
		}
		kinds[tok.Name] = fmt.Sprintf("token %q", tok.Literal)
	}
	for _, rule := range g.m.Rules {
		if rule.Shape != model.Product {
			continue
		}
		name := strcase.ToCamel(rule.Name)
		if prev, ok := kinds[name]; ok {
			return fmt.Errorf("codegen: rule %s and %s produce the same constant Kind%s", rule.Name, prev, name)
		}
		kinds[name] = "rule " + rule.Name
	}
	return nil
}
