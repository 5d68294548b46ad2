// Package syntree provides the generic syntax tree that generated AST
// layers wrap. A tree is a kind-tagged, immutable value: token nodes carry
// source text, interior nodes carry children, and the concatenated token
// text of a tree reproduces the source it was built from.
package syntree

import (
	"iter"
	"strconv"
	"strings"
)

// Kind tags a node with its grammatical category. Kind spaces are owned by
// generated packages; the zero value is reserved and never constructed.
type Kind uint16

// KindInvalid is the reserved zero Kind.
const KindInvalid Kind = 0

// Node is one node of a syntax tree: either a token (a leaf with text) or
// an interior node (with children). Nodes are immutable once constructed.
type Node struct {
	kind     Kind
	token    bool
	text     string
	children []*Node
}

// NewToken returns a token node carrying the given source text.
func NewToken(kind Kind, text string) *Node {
	return &Node{kind: kind, token: true, text: text}
}

// NewNode returns an interior node over the given children. Nil children
// are dropped; the variadic slice is not retained.
func NewNode(kind Kind, children ...*Node) *Node {
	n := &Node{kind: kind}
	for _, child := range children {
		if child != nil {
			n.children = append(n.children, child)
		}
	}
	return n
}

func (n *Node) Kind() Kind { return n.kind }

// IsToken reports whether n is a leaf token node.
func (n *Node) IsToken() bool { return n.token }

// Text returns the token text for token nodes, and the concatenation of
// all descendant token text for interior nodes.
func (n *Node) Text() string {
	if n.token {
		return n.text
	}
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.token {
		sb.WriteString(n.text)
		return
	}
	for _, child := range n.children {
		child.writeText(sb)
	}
}

func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children iterates over the direct children in construction order. The
// sequence is restartable: every range starts again from the first child.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, child := range n.children {
			if !yield(child) {
				return
			}
		}
	}
}

func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.children {
		if child.kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var result []*Node
	for _, child := range n.children {
		if child.kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Dump renders the tree one node per line, indented by depth. Kind names
// come from the supplied resolver since generated packages own the name
// tables; a nil resolver prints numeric kinds.
func (n *Node) Dump(names func(Kind) string) string {
	if names == nil {
		names = func(k Kind) string {
			return "Kind(" + strconv.Itoa(int(k)) + ")"
		}
	}
	var sb strings.Builder
	n.dumpIndent(&sb, names, 0)
	return sb.String()
}

func (n *Node) dumpIndent(sb *strings.Builder, names func(Kind) string, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(names(n.kind))
	if n.token {
		sb.WriteString(" ")
		sb.WriteString(strconv.Quote(n.text))
	}
	sb.WriteString("\n")
	for _, child := range n.children {
		child.dumpIndent(sb, names, indent+1)
	}
}
