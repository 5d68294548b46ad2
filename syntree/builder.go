package syntree

import "fmt"

// Builder assembles a tree top-down: StartNode opens an interior node,
// Token appends a leaf to the innermost open node, FinishNode closes the
// innermost open node. The first error sticks and Finish reports it.
type Builder struct {
	stack []frame
	root  *Node
	err   error
}

type frame struct {
	kind     Kind
	children []*Node
}

func (b *Builder) StartNode(kind Kind) {
	if b.err != nil {
		return
	}
	b.stack = append(b.stack, frame{kind: kind})
}

func (b *Builder) Token(kind Kind, text string) {
	if b.err != nil {
		return
	}
	b.add(NewToken(kind, text))
}

func (b *Builder) FinishNode() {
	if b.err != nil {
		return
	}
	if len(b.stack) == 0 {
		b.err = fmt.Errorf("syntree: FinishNode without matching StartNode")
		return
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.add(NewNode(top.kind, top.children...))
}

func (b *Builder) add(n *Node) {
	if len(b.stack) == 0 {
		if b.root != nil {
			b.err = fmt.Errorf("syntree: more than one root node")
			return
		}
		b.root = n
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, n)
}

// Finish returns the finished root node. It fails when nodes are left
// open, when nothing was built, or when an earlier call misused the
// builder.
func (b *Builder) Finish() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) != 0 {
		return nil, fmt.Errorf("syntree: %d unfinished node(s)", len(b.stack))
	}
	if b.root == nil {
		return nil, fmt.Errorf("syntree: no root node")
	}
	return b.root, nil
}
