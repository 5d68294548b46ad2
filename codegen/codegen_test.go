package codegen

import (
	"bytes"
	"strings"
	"testing"
)

var tinyOpts = Options{PackageName: "ast", SyntreeImport: "example.com/syntree"}

const tinyGrammar = `File = Item*
Item = 'item' Name ';'
Name = 'ident'
`

const tinyKinds = `// Code generated by syntaxgen. DO NOT EDIT.

package ast

import (
	"example.com/syntree"
)

const (
	KindError syntree.Kind = iota + 1
	KindWhitespace
	KindComment

	// Token kinds, in first-appearance order.
	KindItemKw
	KindSemicolon
	KindIdent

	// Node kinds, in declaration order.
	KindFile
	KindItem
	KindName
)

// DebugName returns the name of a kind for dumps and diagnostics.
func DebugName(k syntree.Kind) string {
	switch k {
	case KindError:
		return "Error"
	case KindWhitespace:
		return "Whitespace"
	case KindComment:
		return "Comment"
	case KindItemKw:
		return "ItemKw"
	case KindSemicolon:
		return "Semicolon"
	case KindIdent:
		return "Ident"
	case KindFile:
		return "File"
	case KindItem:
		return "Item"
	case KindName:
		return "Name"
	}
	return "Unknown"
}

// TokenKind maps a token's literal text to its kind. Lexers producing
// trees for this grammar use it to tag keywords and punctuation.
func TokenKind(literal string) (syntree.Kind, bool) {
	switch literal {
	case "item":
		return KindItemKw, true
	case ";":
		return KindSemicolon, true
	case "ident":
		return KindIdent, true
	}
	return syntree.KindInvalid, false
}
`

const tinyNodes = `// Code generated by syntaxgen. DO NOT EDIT.

package ast

import (
	"iter"

	"example.com/syntree"
)

type File struct {
	syntax *syntree.Node
}

func CastFile(n *syntree.Node) *File {
	if n == nil || n.Kind() != KindFile {
		return nil
	}
	return &File{syntax: n}
}

func (n *File) Syntax() *syntree.Node { return n.syntax }

func (n *File) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for child := range n.syntax.Children() {
			v := CastItem(child)
			if v == nil {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

type Item struct {
	syntax *syntree.Node
}

func CastItem(n *syntree.Node) *Item {
	if n == nil || n.Kind() != KindItem {
		return nil
	}
	return &Item{syntax: n}
}

func (n *Item) Syntax() *syntree.Node { return n.syntax }

func (n *Item) Name() *Name {
	for child := range n.syntax.Children() {
		if v := CastName(child); v != nil {
			return v
		}
	}
	return nil
}

type Name struct {
	syntax *syntree.Node
}

func CastName(n *syntree.Node) *Name {
	if n == nil || n.Kind() != KindName {
		return nil
	}
	return &Name{syntax: n}
}

func (n *Name) Syntax() *syntree.Node { return n.syntax }
`

func generate(t *testing.T, src string, opts Options) []File {
	t.Helper()
	files, err := FromSource("test.gram", []byte(src), nil, opts)
	if err != nil {
		t.Fatalf("FromSource error: %v", err)
	}
	return files
}

func TestGenerateGolden(t *testing.T) {
	files := generate(t, tinyGrammar, tinyOpts)
	if len(files) != 2 || files[0].Name != "kinds.go" || files[1].Name != "nodes.go" {
		t.Fatalf("files = %v, want kinds.go and nodes.go", []string{files[0].Name, files[1].Name})
	}
	if got := string(files[0].Content); got != tinyKinds {
		t.Errorf("kinds.go mismatch:\n%s\nwant:\n%s", got, tinyKinds)
	}
	if got := string(files[1].Content); got != tinyNodes {
		t.Errorf("nodes.go mismatch:\n%s\nwant:\n%s", got, tinyNodes)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, tinyGrammar, tinyOpts)
	b := generate(t, tinyGrammar, tinyOpts)
	for i := range a {
		if !bytes.Equal(a[i].Content, b[i].Content) {
			t.Errorf("%s differs between two runs", a[i].Name)
		}
	}
}

const shapesGrammar = `Item = ConstDef | UseDecl
ConstDef = Vis? 'const' Name ';'
UseDecl = 'use' Path Rename? ';'
Rename = 'as' (Name | '_')
Vis = 'pub'
Name = 'ident'
Path = Segment ('::' Segment)*
Segment = 'ident'
Expr = PrefixExpr | UnaryOp
PrefixExpr = op:UnaryOp expr:Expr
UnaryOp = '-' | '!'
RangePat = Pat? '..' Pat?
Pat = 'ident'
List = elems:(Name | ',')*
`

func TestGenerateShapes(t *testing.T) {
	files := generate(t, shapesGrammar, tinyOpts)
	kinds := string(files[0].Content)
	nodes := string(files[1].Content)

	wantKinds := []string{
		"KindConstKw",
		"KindColonColon",
		"KindDotDot",
		"\tcase \"::\":\n\t\treturn KindColonColon, true\n",
	}
	for _, want := range wantKinds {
		if !strings.Contains(kinds, want) {
			t.Errorf("kinds.go missing %q", want)
		}
	}

	wantNodes := []string{
		// sum interface and marker methods
		"type Item interface {\n\tNode\n\tisItem()\n}\n",
		"func (*ConstDef) isItem() {}\n",
		"func (*UseDecl) isItem() {}\n",
		// token enum: cast over its literal kinds, Literal accessor,
		// membership in the Expr sum
		"case KindMinus, KindNot:\n\t\treturn &UnaryOp{syntax: n}\n",
		"func (n *UnaryOp) Literal() string { return n.syntax.Text() }\n",
		"func (*UnaryOp) isExpr() {}\n",
		// single-rule accessors pick the wrapper type, sums stay interfaces
		"func (n *ConstDef) Vis() *Vis {\n",
		"func (n *PrefixExpr) Op() *UnaryOp {\n",
		"func (n *PrefixExpr) Expr() Expr {\n",
		// mixed union: Node result, rule casts first, token switch after
		"func (n *Rename) Name() Node {\n",
		"case KindUnderscore:\n\t\t\treturn &Token{syntax: child}\n",
		// delimited list lowers to a sequence accessor
		"func (n *Path) Segments() iter.Seq[*Segment] {\n",
		// collision: first field keeps the direct accessor, the plural
		// sequence accessor covers both occurrences
		"func (n *RangePat) Pat() *Pat {\n",
		"func (n *RangePat) Pats() iter.Seq[*Pat] {\n",
		// mixed repetition falls back to the general matcher
		"func (n *List) Elems() iter.Seq[Node] {\n",
		"\t\t\tvar v Node\n",
		"\t\t\t\tv = &Token{syntax: child}\n",
	}
	for _, want := range wantNodes {
		if !strings.Contains(nodes, want) {
			t.Errorf("nodes.go missing %q", want)
		}
	}
}

func TestGenerateNameChecks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "rule colliding with support identifier",
			src:  "Token = 'x'",
			want: "support identifier Token",
		},
		{
			name: "rule kind colliding with token kind",
			src:  "Ident = 'x'\nA = 'ident'",
			want: "same constant KindIdent",
		},
		{
			name: "rule colliding with built-in kind",
			src:  "Error = 'x'",
			want: "same constant KindError",
		},
		{
			name: "two rules with one type name",
			src:  "FooBar = 'x'\nFoo_bar = 'y'",
			want: "same type name FooBar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSource("test.gram", []byte(tt.src), nil, tinyOpts)
			if err == nil {
				t.Fatal("FromSource succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestOptionsValidation(t *testing.T) {
	if _, err := FromSource("test.gram", []byte(tinyGrammar), nil, Options{SyntreeImport: "x"}); err == nil {
		t.Error("missing package name accepted")
	}
	if _, err := FromSource("test.gram", []byte(tinyGrammar), nil, Options{PackageName: "ast"}); err == nil {
		t.Error("missing syntree import accepted")
	}
}

func TestGenerateFileNameOverride(t *testing.T) {
	opts := tinyOpts
	opts.KindsFile = "syntax_kinds.go"
	opts.NodesFile = "syntax_nodes.go"
	files := generate(t, tinyGrammar, opts)
	if files[0].Name != "syntax_kinds.go" || files[1].Name != "syntax_nodes.go" {
		t.Errorf("names = %s, %s, want overrides", files[0].Name, files[1].Name)
	}
}
