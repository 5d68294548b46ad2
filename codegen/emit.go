package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/sable-lang/sable/model"
)

func (g *generator) header(b *bytes.Buffer) {
	b.WriteString("// Code generated by syntaxgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(b, "package %s\n\n", g.opts.PackageName)
}

// finish trims trailing blank lines left by the per-declaration emitters.
func finish(b *bytes.Buffer) []byte {
	return append(bytes.TrimRight(b.Bytes(), "\n"), '\n')
}

func (g *generator) kindsFile() []byte {
	var b bytes.Buffer
	g.header(&b)
	fmt.Fprintf(&b, "import (\n\t%q\n)\n\n", g.opts.SyntreeImport)

	b.WriteString("const (\n")
	b.WriteString("\tKindError syntree.Kind = iota + 1\n")
	b.WriteString("\tKindWhitespace\n")
	b.WriteString("\tKindComment\n")
	if len(g.m.Tokens) > 0 {
		b.WriteString("\n\t// Token kinds, in first-appearance order.\n")
		for _, tok := range g.m.Tokens {
			fmt.Fprintf(&b, "\tKind%s\n", tok.Name)
		}
	}
	if len(g.products) > 0 {
		b.WriteString("\n\t// Node kinds, in declaration order.\n")
		for _, name := range g.products {
			fmt.Fprintf(&b, "\tKind%s\n", name)
		}
	}
	b.WriteString(")\n\n")

	b.WriteString("// DebugName returns the name of a kind for dumps and diagnostics.\n")
	b.WriteString("func DebugName(k syntree.Kind) string {\n\tswitch k {\n")
	for _, name := range []string{"Error", "Whitespace", "Comment"} {
		fmt.Fprintf(&b, "\tcase Kind%s:\n\t\treturn %q\n", name, name)
	}
	for _, tok := range g.m.Tokens {
		fmt.Fprintf(&b, "\tcase Kind%s:\n\t\treturn %q\n", tok.Name, tok.Name)
	}
	for _, name := range g.products {
		fmt.Fprintf(&b, "\tcase Kind%s:\n\t\treturn %q\n", name, name)
	}
	b.WriteString("\t}\n\treturn \"Unknown\"\n}\n\n")

	b.WriteString("// TokenKind maps a token's literal text to its kind. Lexers producing\n")
	b.WriteString("// trees for this grammar use it to tag keywords and punctuation.\n")
	b.WriteString("func TokenKind(literal string) (syntree.Kind, bool) {\n\tswitch literal {\n")
	for _, tok := range g.m.Tokens {
		fmt.Fprintf(&b, "\tcase %q:\n\t\treturn Kind%s, true\n", tok.Literal, tok.Name)
	}
	b.WriteString("\t}\n\treturn syntree.KindInvalid, false\n}\n")

	return finish(&b)
}

func (g *generator) nodesFile() []byte {
	var b bytes.Buffer
	g.header(&b)
	if g.needIter() {
		fmt.Fprintf(&b, "import (\n\t\"iter\"\n\n\t%q\n)\n\n", g.opts.SyntreeImport)
	} else {
		fmt.Fprintf(&b, "import (\n\t%q\n)\n\n", g.opts.SyntreeImport)
	}

	for _, rule := range g.m.Rules {
		switch rule.Shape {
		case model.Sum:
			g.emitSum(&b, rule)
		case model.TokenEnum:
			g.emitTokenEnum(&b, rule)
		case model.Product:
			g.emitProduct(&b, rule)
		}
	}
	return finish(&b)
}

func (g *generator) needIter() bool {
	for _, rule := range g.m.Rules {
		for _, f := range rule.Fields {
			if f.Card == model.Many {
				return true
			}
		}
		for _, col := range rule.Collisions {
			if col.Accessor != "" {
				return true
			}
		}
	}
	return false
}

func (g *generator) emitSum(b *bytes.Buffer, rule *model.Rule) {
	name := strcase.ToCamel(rule.Name)
	fmt.Fprintf(b, "type %s interface {\n\tNode\n\tis%s()\n}\n\n", name, name)

	fmt.Fprintf(b, "func Cast%s(n *syntree.Node) %s {\n", name, name)
	b.WriteString("\tif n == nil {\n\t\treturn nil\n\t}\n")
	b.WriteString("\tswitch n.Kind() {\n")
	used := make(map[string]bool)
	for _, concrete := range g.m.Concretes(rule.Name) {
		kinds := g.ruleKinds(concrete, used)
		if len(kinds) == 0 {
			continue
		}
		fmt.Fprintf(b, "\tcase %s:\n\t\treturn &%s{syntax: n}\n", strings.Join(kinds, ", "), strcase.ToCamel(concrete))
	}
	b.WriteString("\t}\n\treturn nil\n}\n\n")
}

func (g *generator) emitTokenEnum(b *bytes.Buffer, rule *model.Rule) {
	name := strcase.ToCamel(rule.Name)
	fmt.Fprintf(b, "type %s struct {\n\tsyntax *syntree.Node\n}\n\n", name)

	kinds := g.ruleKinds(rule.Name, make(map[string]bool))
	fmt.Fprintf(b, "func Cast%s(n *syntree.Node) *%s {\n", name, name)
	b.WriteString("\tif n == nil {\n\t\treturn nil\n\t}\n")
	fmt.Fprintf(b, "\tswitch n.Kind() {\n\tcase %s:\n\t\treturn &%s{syntax: n}\n\t}\n", strings.Join(kinds, ", "), name)
	b.WriteString("\treturn nil\n}\n\n")

	fmt.Fprintf(b, "func (n *%s) Syntax() *syntree.Node { return n.syntax }\n\n", name)
	g.emitMarkers(b, rule.Name)
	fmt.Fprintf(b, "func (n *%s) Literal() string { return n.syntax.Text() }\n\n", name)
}

func (g *generator) emitProduct(b *bytes.Buffer, rule *model.Rule) {
	name := strcase.ToCamel(rule.Name)
	fmt.Fprintf(b, "type %s struct {\n\tsyntax *syntree.Node\n}\n\n", name)

	fmt.Fprintf(b, "func Cast%s(n *syntree.Node) *%s {\n", name, name)
	fmt.Fprintf(b, "\tif n == nil || n.Kind() != Kind%s {\n\t\treturn nil\n\t}\n", name)
	fmt.Fprintf(b, "\treturn &%s{syntax: n}\n}\n\n", name)

	fmt.Fprintf(b, "func (n *%s) Syntax() *syntree.Node { return n.syntax }\n\n", name)
	g.emitMarkers(b, rule.Name)

	for _, f := range rule.Fields {
		g.emitAccessor(b, name, strcase.ToCamel(f.Name), f.Card, f.Targets)
	}
	for _, col := range rule.Collisions {
		if col.Accessor == "" {
			continue
		}
		g.emitAccessor(b, name, col.Accessor, model.Many, col.Targets)
	}
}

func (g *generator) emitMarkers(b *bytes.Buffer, ruleName string) {
	name := strcase.ToCamel(ruleName)
	for _, sum := range g.m.SumsContaining(ruleName) {
		fmt.Fprintf(b, "func (*%s) is%s() {}\n\n", name, strcase.ToCamel(sum))
	}
}

func (g *generator) emitAccessor(b *bytes.Buffer, recv, accessor string, card model.Cardinality, targets []model.Target) {
	if card == model.Many {
		g.emitSeqAccessor(b, recv, accessor, targets)
		return
	}

	ret := g.targetType(targets)
	fmt.Fprintf(b, "func (n *%s) %s() %s {\n", recv, accessor, ret)
	b.WriteString("\tfor child := range n.syntax.Children() {\n")
	for _, t := range targets {
		if t.Kind == model.TargetRule {
			fmt.Fprintf(b, "\t\tif v := Cast%s(child); v != nil {\n\t\t\treturn v\n\t\t}\n", strcase.ToCamel(t.Rule))
		}
	}
	if kinds := g.tokenKinds(targets); len(kinds) > 0 {
		fmt.Fprintf(b, "\t\tswitch child.Kind() {\n\t\tcase %s:\n\t\t\treturn &Token{syntax: child}\n\t\t}\n", strings.Join(kinds, ", "))
	}
	b.WriteString("\t}\n\treturn nil\n}\n\n")
}

func (g *generator) emitSeqAccessor(b *bytes.Buffer, recv, accessor string, targets []model.Target) {
	elem := g.targetType(targets)
	fmt.Fprintf(b, "func (n *%s) %s() iter.Seq[%s] {\n", recv, accessor, elem)
	fmt.Fprintf(b, "\treturn func(yield func(%s) bool) {\n", elem)
	b.WriteString("\t\tfor child := range n.syntax.Children() {\n")

	switch {
	case len(targets) == 1 && targets[0].Kind == model.TargetRule:
		fmt.Fprintf(b, "\t\t\tv := Cast%s(child)\n", strcase.ToCamel(targets[0].Rule))
		b.WriteString("\t\t\tif v == nil {\n\t\t\t\tcontinue\n\t\t\t}\n")
	case len(targets) == 1:
		fmt.Fprintf(b, "\t\t\tif child.Kind() != Kind%s {\n\t\t\t\tcontinue\n\t\t\t}\n", g.tokens[targets[0].Literal])
		b.WriteString("\t\t\tv := &Token{syntax: child}\n")
	default:
		fmt.Fprintf(b, "\t\t\tvar v %s\n", elem)
		for _, t := range targets {
			if t.Kind == model.TargetRule {
				fmt.Fprintf(b, "\t\t\tif w := Cast%s(child); w != nil {\n\t\t\t\tv = w\n\t\t\t}\n", strcase.ToCamel(t.Rule))
			}
		}
		if kinds := g.tokenKinds(targets); len(kinds) > 0 {
			fmt.Fprintf(b, "\t\t\tswitch child.Kind() {\n\t\t\tcase %s:\n\t\t\t\tv = &Token{syntax: child}\n\t\t\t}\n", strings.Join(kinds, ", "))
		}
		b.WriteString("\t\t\tif v == nil {\n\t\t\t\tcontinue\n\t\t\t}\n")
	}

	b.WriteString("\t\t\tif !yield(v) {\n\t\t\t\treturn\n\t\t\t}\n")
	b.WriteString("\t\t}\n\t}\n}\n\n")
}

// targetType is the accessor's value type: the wrapper for a single rule
// target, *Token when every target is a token, Node for mixed unions.
func (g *generator) targetType(targets []model.Target) string {
	if len(targets) == 1 && targets[0].Kind == model.TargetRule {
		name := strcase.ToCamel(targets[0].Rule)
		if rule := g.m.Rule(targets[0].Rule); rule != nil && rule.Shape == model.Sum {
			return name
		}
		return "*" + name
	}
	for _, t := range targets {
		if t.Kind != model.TargetToken {
			return "Node"
		}
	}
	return "*Token"
}

// ruleKinds lists the kind constants a concrete rule can appear as: its
// own kind for a Product, its literal kinds for a TokenEnum. Kinds
// already in used are dropped so emitted switch cases stay unique.
func (g *generator) ruleKinds(name string, used map[string]bool) []string {
	rule := g.m.Rule(name)
	if rule == nil {
		return nil
	}
	var all []string
	if rule.Shape == model.TokenEnum {
		for _, lit := range rule.Literals {
			all = append(all, "Kind"+g.tokens[lit])
		}
	} else {
		all = []string{"Kind" + strcase.ToCamel(name)}
	}
	kinds := all[:0]
	for _, k := range all {
		if used[k] {
			continue
		}
		used[k] = true
		kinds = append(kinds, k)
	}
	return kinds
}

func (g *generator) tokenKinds(targets []model.Target) []string {
	var kinds []string
	for _, t := range targets {
		if t.Kind == model.TargetToken {
			kinds = append(kinds, "Kind"+g.tokens[t.Literal])
		}
	}
	return kinds
}
