package model

import (
	"github.com/iancoleman/strcase"

	"github.com/sable-lang/sable/grammar"
)

// Options configures model building.
type Options struct {
	// TokenClasses lists the word literals that name lexer token classes
	// (any identifier, any integer) instead of keywords. Nil means
	// DefaultTokenClasses.
	TokenClasses []string
}

// Build resolves and classifies a parsed grammar. It fails on references
// to undefined rules, duplicate or nested labels, reserved or unnameable
// tokens; field name collisions are not failures and are recorded on the
// rule instead.
func Build(g *grammar.Grammar, opts Options) (*Model, error) {
	classNames := opts.TokenClasses
	if classNames == nil {
		classNames = DefaultTokenClasses
	}
	classes := make(map[string]bool, len(classNames))
	for _, name := range classNames {
		classes[name] = true
	}

	b := &builder{g: g, classes: classes}
	if err := b.resolve(); err != nil {
		return nil, err
	}

	m := &Model{byName: make(map[string]*Rule, len(g.Rules))}
	for _, rule := range g.Rules {
		rm, err := b.buildRule(rule)
		if err != nil {
			return nil, err
		}
		m.Rules = append(m.Rules, rm)
		m.byName[rm.Name] = rm
	}

	tokens, err := b.tokenTable()
	if err != nil {
		return nil, err
	}
	m.Tokens = tokens
	return m, nil
}

type builder struct {
	g       *grammar.Grammar
	classes map[string]bool
}

func (b *builder) resolve() error {
	for _, rule := range b.g.Rules {
		labels := make(map[string]bool)
		if err := b.checkBody(rule.Name, rule.Body, labels); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) checkBody(rule string, body grammar.Body, labels map[string]bool) error {
	switch body := body.(type) {
	case *grammar.Ref:
		if b.g.Rule(body.Name) == nil {
			return resolutionErr(rule, "reference to undefined rule %s", body.Name)
		}
	case *grammar.Seq:
		for _, item := range body.Items {
			if err := b.checkBody(rule, item, labels); err != nil {
				return err
			}
		}
	case *grammar.Alt:
		for _, branch := range body.Branches {
			if err := b.checkBody(rule, branch, labels); err != nil {
				return err
			}
		}
	case *grammar.Opt:
		return b.checkBody(rule, body.Body, labels)
	case *grammar.Rep:
		return b.checkBody(rule, body.Body, labels)
	case *grammar.Labeled:
		if labels[body.Label] {
			return resolutionErr(rule, "duplicate label %s", body.Label)
		}
		labels[body.Label] = true
		return b.checkBody(rule, body.Body, labels)
	}
	return nil
}

func (b *builder) buildRule(rule *grammar.Rule) (*Rule, error) {
	rm := &Rule{Name: rule.Name}
	if alt, ok := rule.Body.(*grammar.Alt); ok {
		if variants, ok := bareRefs(alt); ok {
			rm.Shape = Sum
			rm.Variants = variants
			return rm, nil
		}
		if literals, ok := bareLiterals(alt); ok {
			rm.Shape = TokenEnum
			rm.Literals = literals
			return rm, nil
		}
	}

	rm.Shape = Product
	w := &fieldWalker{rule: rule.Name, byAccessor: make(map[string]int)}
	if err := w.walk(rule.Body, One); err != nil {
		return nil, err
	}
	w.finish()
	rm.Fields = w.fields
	rm.Collisions = w.collisions
	return rm, nil
}

func bareRefs(alt *grammar.Alt) ([]string, bool) {
	variants := make([]string, 0, len(alt.Branches))
	for _, branch := range alt.Branches {
		ref, ok := branch.(*grammar.Ref)
		if !ok {
			return nil, false
		}
		variants = append(variants, ref.Name)
	}
	return variants, true
}

func bareLiterals(alt *grammar.Alt) ([]string, bool) {
	literals := make([]string, 0, len(alt.Branches))
	for _, branch := range alt.Branches {
		lit, ok := branch.(*grammar.Literal)
		if !ok {
			return nil, false
		}
		literals = append(literals, lit.Text)
	}
	return literals, true
}

// fieldWalker lowers a Product rule body into fields. Collisions on
// accessor names are recorded, never fatal: the first field keeps the
// direct accessor and a sequence accessor covers all occurrences.
type fieldWalker struct {
	rule       string
	fields     []Field
	byAccessor map[string]int
	collisions []Collision
	colIndex   map[string]int
}

func (w *fieldWalker) walk(body grammar.Body, ctx Cardinality) error {
	switch body := body.(type) {
	case *grammar.Literal:
		// unlabeled tokens are navigational, never fields
		return nil
	case *grammar.Ref:
		return w.add(Field{
			Name:     inferredName(body.Name, ctx),
			Card:     ctx,
			Targets:  []Target{{Kind: TargetRule, Rule: body.Name}},
			Inferred: true,
		})
	case *grammar.Labeled:
		targets, card, err := w.analyze(body.Body, ctx)
		if err != nil {
			return err
		}
		return w.add(Field{Name: body.Label, Card: card, Targets: targets})
	case *grammar.Opt:
		return w.walk(body.Body, maxCard(ctx, Optional))
	case *grammar.Rep:
		return w.walk(body.Body, Many)
	case *grammar.Seq:
		if payload, ok := listPayload(body); ok {
			return w.add(Field{
				Name:     inferredName(payload, Many),
				Card:     Many,
				Targets:  []Target{{Kind: TargetRule, Rule: payload}},
				Inferred: true,
			})
		}
		for _, item := range body.Items {
			if err := w.walk(item, ctx); err != nil {
				return err
			}
		}
		return nil
	case *grammar.Alt:
		base, ok := unionName(body)
		if !ok {
			// all-token alternation: no field without a label
			return nil
		}
		targets, card, err := w.analyze(body, ctx)
		if err != nil {
			return err
		}
		return w.add(Field{Name: inferredName(base, card), Card: card, Targets: targets, Inferred: true})
	}
	return nil
}

// inferredName derives a field name from a referenced rule. Fields of
// cardinality Many take a naive plural so their accessors read naturally.
func inferredName(rule string, card Cardinality) string {
	name := strcase.ToSnake(rule)
	if card == Many {
		name += "s"
	}
	return name
}

// analyze computes the target set and cardinality of a single field value
// from the body under its label (or of an unlabeled alternation).
func (w *fieldWalker) analyze(body grammar.Body, ctx Cardinality) ([]Target, Cardinality, error) {
	switch body := body.(type) {
	case *grammar.Literal:
		return []Target{{Kind: TargetToken, Literal: body.Text}}, ctx, nil
	case *grammar.Ref:
		return []Target{{Kind: TargetRule, Rule: body.Name}}, ctx, nil
	case *grammar.Opt:
		return w.analyze(body.Body, maxCard(ctx, Optional))
	case *grammar.Rep:
		return w.analyze(body.Body, Many)
	case *grammar.Labeled:
		return nil, 0, resolutionErr(w.rule, "nested label %s", body.Label)
	case *grammar.Seq:
		if payload, ok := listPayload(body); ok {
			return []Target{{Kind: TargetRule, Rule: payload}}, Many, nil
		}
		return w.analyzeSeq(body, ctx)
	case *grammar.Alt:
		var targets []Target
		card := ctx
		for _, branch := range body.Branches {
			branchTargets, branchCard, err := w.analyze(branch, ctx)
			if err != nil {
				return nil, 0, err
			}
			targets = mergeTargets(targets, branchTargets)
			card = maxCard(card, branchCard)
		}
		return targets, card, nil
	}
	return nil, 0, resolutionErr(w.rule, "cannot derive a field from this element")
}

// analyzeSeq picks the sequence's payload: the first item whose subtree
// references a rule, or the first item outright when none does.
func (w *fieldWalker) analyzeSeq(seq *grammar.Seq, ctx Cardinality) ([]Target, Cardinality, error) {
	for _, item := range seq.Items {
		if containsRef(item) {
			return w.analyze(item, ctx)
		}
	}
	return w.analyze(seq.Items[0], ctx)
}

func (w *fieldWalker) add(f Field) error {
	accessor := strcase.ToCamel(f.Name)
	if accessor == "Syntax" {
		return resolutionErr(w.rule, "field name %s is reserved", f.Name)
	}
	if _, taken := w.byAccessor[accessor]; taken {
		w.collide(accessor, f)
		return nil
	}
	w.byAccessor[accessor] = len(w.fields)
	w.fields = append(w.fields, f)
	return nil
}

func (w *fieldWalker) collide(accessor string, f Field) {
	if w.colIndex == nil {
		w.colIndex = make(map[string]int)
	}
	if i, ok := w.colIndex[accessor]; ok {
		w.collisions[i].Count++
		w.collisions[i].Targets = mergeTargets(w.collisions[i].Targets, f.Targets)
		return
	}
	first := w.fields[w.byAccessor[accessor]]
	w.colIndex[accessor] = len(w.collisions)
	w.collisions = append(w.collisions, Collision{
		Field:   first.Name,
		Count:   2,
		Targets: mergeTargets(append([]Target(nil), first.Targets...), f.Targets),
	})
}

// finish names the sequence accessors. The names are naive plurals of the
// collided accessor; a plural that is itself taken stays suppressed.
func (w *fieldWalker) finish() {
	for i := range w.collisions {
		accessor := strcase.ToCamel(w.collisions[i].Field) + "s"
		if _, taken := w.byAccessor[accessor]; taken {
			continue
		}
		w.collisions[i].Accessor = accessor
	}
}

// listPayload detects the delimited list idiom T (sep T)*, with or without
// a trailing separator: the whole sequence lowers to one Many field on T.
func listPayload(seq *grammar.Seq) (string, bool) {
	first, ok := seq.Items[0].(*grammar.Ref)
	if !ok {
		return "", false
	}
	for _, item := range seq.Items[1:] {
		rep, ok := item.(*grammar.Rep)
		if !ok {
			continue
		}
		if refersTo(rep.Body, first.Name) {
			return first.Name, true
		}
	}
	return "", false
}

func refersTo(body grammar.Body, name string) bool {
	switch body := body.(type) {
	case *grammar.Ref:
		return body.Name == name
	case *grammar.Seq:
		for _, item := range body.Items {
			if refersTo(item, name) {
				return true
			}
		}
	case *grammar.Alt:
		for _, branch := range body.Branches {
			if refersTo(branch, name) {
				return true
			}
		}
	case *grammar.Opt:
		return refersTo(body.Body, name)
	case *grammar.Rep:
		return refersTo(body.Body, name)
	case *grammar.Labeled:
		return refersTo(body.Body, name)
	}
	return false
}

func containsRef(body grammar.Body) bool {
	switch body := body.(type) {
	case *grammar.Ref:
		return true
	case *grammar.Seq:
		for _, item := range body.Items {
			if containsRef(item) {
				return true
			}
		}
	case *grammar.Alt:
		for _, branch := range body.Branches {
			if containsRef(branch) {
				return true
			}
		}
	case *grammar.Opt:
		return containsRef(body.Body)
	case *grammar.Rep:
		return containsRef(body.Body)
	case *grammar.Labeled:
		return containsRef(body.Body)
	}
	return false
}

// unionName picks the rule whose name an unlabeled alternation is named
// after: the first referenced rule in branch order. Alternations without
// any rule reference have no name.
func unionName(alt *grammar.Alt) (string, bool) {
	if ref := firstRef(alt); ref != "" {
		return ref, true
	}
	return "", false
}

func firstRef(body grammar.Body) string {
	switch body := body.(type) {
	case *grammar.Ref:
		return body.Name
	case *grammar.Seq:
		for _, item := range body.Items {
			if name := firstRef(item); name != "" {
				return name
			}
		}
	case *grammar.Alt:
		for _, branch := range body.Branches {
			if name := firstRef(branch); name != "" {
				return name
			}
		}
	case *grammar.Opt:
		return firstRef(body.Body)
	case *grammar.Rep:
		return firstRef(body.Body)
	case *grammar.Labeled:
		return firstRef(body.Body)
	}
	return ""
}

func mergeTargets(dst, src []Target) []Target {
	for _, t := range src {
		found := false
		for _, have := range dst {
			if have == t {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, t)
		}
	}
	return dst
}

func (b *builder) tokenTable() ([]TokenInfo, error) {
	var infos []TokenInfo
	seen := make(map[string]bool)
	names := make(map[string]string)
	for _, rule := range b.g.Rules {
		var err error
		walkLiterals(rule.Body, func(lit *grammar.Literal) {
			if err != nil || seen[lit.Text] {
				return
			}
			seen[lit.Text] = true
			name, ok := tokenKindName(lit.Text, b.classes)
			if !ok {
				err = resolutionErr(rule.Name, "no kind name for token %q", lit.Text)
				return
			}
			if prev, dup := names[name]; dup {
				err = resolutionErr(rule.Name, "tokens %q and %q map to the same kind %s", prev, lit.Text, name)
				return
			}
			names[name] = lit.Text
			infos = append(infos, TokenInfo{Literal: lit.Text, Name: name})
		})
		if err != nil {
			return nil, err
		}
	}
	return infos, nil
}

func walkLiterals(body grammar.Body, fn func(*grammar.Literal)) {
	switch body := body.(type) {
	case *grammar.Literal:
		fn(body)
	case *grammar.Seq:
		for _, item := range body.Items {
			walkLiterals(item, fn)
		}
	case *grammar.Alt:
		for _, branch := range body.Branches {
			walkLiterals(branch, fn)
		}
	case *grammar.Opt:
		walkLiterals(body.Body, fn)
	case *grammar.Rep:
		walkLiterals(body.Body, fn)
	case *grammar.Labeled:
		walkLiterals(body.Body, fn)
	}
}
