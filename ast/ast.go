// Package ast is the typed view over Sable syntax trees. kinds.go and
// nodes.go are generated from sable.gram by syntaxgen; this file is the
// handwritten support they build on.
package ast

import (
	_ "embed"

	"github.com/sable-lang/sable/syntree"
)

// GrammarSource is the grammar the generated files were produced from.
// The syntaxgen CLI and the consistency test regenerate from it.
//
//go:embed sable.gram
var GrammarSource []byte

// Node is implemented by every typed wrapper in this package.
type Node interface {
	Syntax() *syntree.Node
}

// Token wraps a single token node: a keyword, punctuation, or lexer
// class token appearing as a field value.
type Token struct {
	syntax *syntree.Node
}

func CastToken(n *syntree.Node) *Token {
	if n == nil || !n.IsToken() {
		return nil
	}
	return &Token{syntax: n}
}

func (n *Token) Syntax() *syntree.Node { return n.syntax }

func (n *Token) Text() string { return n.syntax.Text() }

// Text returns the source text under any typed node.
func Text(n Node) string { return n.Syntax().Text() }
