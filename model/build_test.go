package model

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sable-lang/sable/grammar"
)

func buildModel(t *testing.T, src string) *Model {
	t.Helper()
	g, err := grammar.Parse("test.gram", []byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	m, err := Build(g, Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return m
}

func fieldText(f Field) string {
	targets := make([]string, len(f.Targets))
	for i, target := range f.Targets {
		targets[i] = target.String()
	}
	text := f.Name + " " + f.Card.String() + " " + strings.Join(targets, "|")
	if f.Inferred {
		text += " (inferred)"
	}
	return text
}

func fieldTexts(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fieldText(f)
	}
	return out
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		rule     string
		shape    Shape
		variants []string
		literals []string
	}{
		{
			name:     "alternation of bare refs is a sum",
			src:      "Item = Const | Enum | Use\nConst = 'const'\nEnum = 'enum'\nUse = 'use'",
			rule:     "Item",
			shape:    Sum,
			variants: []string{"Const", "Enum", "Use"},
		},
		{
			name:     "sum keeps duplicate variants",
			src:      "Item = Const | Use | Const\nConst = 'const'\nUse = 'use'",
			rule:     "Item",
			shape:    Sum,
			variants: []string{"Const", "Use", "Const"},
		},
		{
			name:     "alternation of bare tokens is a token enum",
			src:      "UnaryOp = '-' | '!' | '*'",
			rule:     "UnaryOp",
			shape:    TokenEnum,
			literals: []string{"-", "!", "*"},
		},
		{
			name:  "mixed alternation is a product",
			src:   "Callee = Name | '_'\nName = 'ident'",
			rule:  "Callee",
			shape: Product,
		},
		{
			name:  "alternation with a sequence branch is a product",
			src:   "A = B C | D\nB = 'b'\nC = 'c'\nD = 'd'",
			rule:  "A",
			shape: Product,
		},
		{
			name:  "single ref is a product",
			src:   "A = B\nB = 'b'",
			rule:  "A",
			shape: Product,
		},
		{
			name:  "single token is a product",
			src:   "Semi = ';'",
			rule:  "Semi",
			shape: Product,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := buildModel(t, tt.src)
			rule := m.Rule(tt.rule)
			if rule == nil {
				t.Fatalf("Rule(%s) = nil", tt.rule)
			}
			if rule.Shape != tt.shape {
				t.Errorf("shape = %s, want %s", rule.Shape, tt.shape)
			}
			if tt.variants != nil && !reflect.DeepEqual(rule.Variants, tt.variants) {
				t.Errorf("variants = %v, want %v", rule.Variants, tt.variants)
			}
			if tt.literals != nil && !reflect.DeepEqual(rule.Literals, tt.literals) {
				t.Errorf("literals = %v, want %v", rule.Literals, tt.literals)
			}
		})
	}
}

func TestFieldLowering(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		rule   string
		fields []string
	}{
		{
			name:   "bare ref gets an inferred field of cardinality one",
			src:    "Fn = 'fn' Name\nName = 'ident'",
			rule:   "Fn",
			fields: []string{"name One Name (inferred)"},
		},
		{
			name:   "optional wrapper widens to optional",
			src:    "Fn = Vis? 'fn' Name\nVis = 'pub'\nName = 'ident'",
			rule:   "Fn",
			fields: []string{"vis Optional Vis (inferred)", "name One Name (inferred)"},
		},
		{
			name:   "repetition widens to many and pluralizes",
			src:    "File = Item*\nItem = 'item'",
			rule:   "File",
			fields: []string{"items Many Item (inferred)"},
		},
		{
			name: "labels name fields and bind their suffix",
			src:  "BinExpr = lhs:Expr op:('+' | '-') rhs:Expr tail:Expr?\nExpr = 'expr'",
			rule: "BinExpr",
			fields: []string{
				"lhs One Expr",
				"op One '+'|'-'",
				"rhs One Expr",
				"tail Optional Expr",
			},
		},
		{
			name:   "delimited list lowers to one many field",
			src:    "Args = Expr (',' Expr)*\nExpr = 'expr'",
			rule:   "Args",
			fields: []string{"exprs Many Expr (inferred)"},
		},
		{
			name:   "optional brace list keeps cardinality many",
			src:    "RecordFieldList = '{' fields:(RecordField (',' RecordField)* ','?)? '}'\nRecordField = 'field'",
			rule:   "RecordFieldList",
			fields: []string{"fields Many RecordField"},
		},
		{
			name:   "unlabeled mixed alternation gets one polymorphic field",
			src:    "Rename = 'as' (Name | '_')\nName = 'ident'",
			rule:   "Rename",
			fields: []string{"name One Name|'_' (inferred)"},
		},
		{
			name:   "unlabeled token alternation gets no field",
			src:    "Sign = Digits ('+' | '-')\nDigits = 'int_number'",
			rule:   "Sign",
			fields: []string{"digits One Digits (inferred)"},
		},
		{
			name:   "group contents inherit the group's wrapper",
			src:    "X = A (B C)?\nA = 'a'\nB = 'b'\nC = 'c'",
			rule:   "X",
			fields: []string{"a One A (inferred)", "b Optional B (inferred)", "c Optional C (inferred)"},
		},
		{
			name:   "multiword rule names snake case",
			src:    "Path = NameRef\nNameRef = 'ident'",
			rule:   "Path",
			fields: []string{"name_ref One NameRef (inferred)"},
		},
		{
			name:   "labeled sequence targets its payload rule",
			src:    "Index = base:Expr '[' index:(Expr) ']'\nExpr = 'expr'",
			rule:   "Index",
			fields: []string{"base One Expr", "index One Expr"},
		},
		{
			name:   "top level mixed alternation is one field",
			src:    "PathSegment = '::'? Name | '<' Ty '>'\nName = 'ident'\nTy = 'ty'",
			rule:   "PathSegment",
			fields: []string{"name One Name|Ty (inferred)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := buildModel(t, tt.src)
			rule := m.Rule(tt.rule)
			if rule == nil {
				t.Fatalf("Rule(%s) = nil", tt.rule)
			}
			if rule.Shape != Product {
				t.Fatalf("shape = %s, want Product", rule.Shape)
			}
			got := fieldTexts(rule.Fields)
			if !reflect.DeepEqual(got, tt.fields) {
				t.Errorf("fields = %v, want %v", got, tt.fields)
			}
		})
	}
}

func TestCollisions(t *testing.T) {
	t.Run("two unlabeled refs of the same rule", func(t *testing.T) {
		m := buildModel(t, "RangePat = Pat? '..' Pat?\nPat = 'pat'")
		rule := m.Rule("RangePat")
		got := fieldTexts(rule.Fields)
		want := []string{"pat Optional Pat (inferred)"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("fields = %v, want %v", got, want)
		}
		if len(rule.Collisions) != 1 {
			t.Fatalf("collisions = %d, want 1", len(rule.Collisions))
		}
		col := rule.Collisions[0]
		if col.Field != "pat" || col.Accessor != "Pats" || col.Count != 2 {
			t.Errorf("collision = %+v, want field pat, accessor Pats, count 2", col)
		}
		if len(col.Targets) != 1 || col.Targets[0].Rule != "Pat" {
			t.Errorf("collision targets = %v, want [Pat]", col.Targets)
		}
	})

	t.Run("three occurrences count three", func(t *testing.T) {
		m := buildModel(t, "Triple = Pat Pat Pat\nPat = 'pat'")
		rule := m.Rule("Triple")
		if len(rule.Fields) != 1 || rule.Fields[0].Card != One {
			t.Fatalf("fields = %v, want one field of cardinality One", fieldTexts(rule.Fields))
		}
		if len(rule.Collisions) != 1 || rule.Collisions[0].Count != 3 {
			t.Errorf("collisions = %+v, want one with count 3", rule.Collisions)
		}
	})

	t.Run("label and inferred name can collide", func(t *testing.T) {
		m := buildModel(t, "X = pat:Other Pat\nOther = 'o'\nPat = 'pat'")
		rule := m.Rule("X")
		got := fieldTexts(rule.Fields)
		want := []string{"pat One Other"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("fields = %v, want %v", got, want)
		}
		if len(rule.Collisions) != 1 {
			t.Fatalf("collisions = %d, want 1", len(rule.Collisions))
		}
		targets := rule.Collisions[0].Targets
		if len(targets) != 2 || targets[0].Rule != "Other" || targets[1].Rule != "Pat" {
			t.Errorf("collision targets = %v, want [Other Pat]", targets)
		}
	})

	t.Run("taken plural suppresses the sequence accessor", func(t *testing.T) {
		m := buildModel(t, "X = Pat Pat Pats\nPat = 'pat'\nPats = 'pats'")
		rule := m.Rule("X")
		if len(rule.Collisions) != 1 {
			t.Fatalf("collisions = %d, want 1", len(rule.Collisions))
		}
		if got := rule.Collisions[0].Accessor; got != "" {
			t.Errorf("collision accessor = %q, want suppressed", got)
		}
	})
}

func TestResolutionErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		opts    Options
		rule    string
		wantMsg string
	}{
		{
			name:    "undefined reference",
			src:     "A = B C\nB = 'b'",
			rule:    "A",
			wantMsg: "undefined rule C",
		},
		{
			name:    "duplicate label",
			src:     "A = x:B x:C\nB = 'b'\nC = 'c'",
			rule:    "A",
			wantMsg: "duplicate label x",
		},
		{
			name:    "nested label",
			src:     "A = x:(y:B)\nB = 'b'",
			rule:    "A",
			wantMsg: "nested label y",
		},
		{
			name:    "unnameable punctuation",
			src:     "A = '$$'",
			rule:    "A",
			wantMsg: "no kind name for token",
		},
		{
			name:    "reserved field name",
			src:     "A = syntax:B\nB = 'b'",
			rule:    "A",
			wantMsg: "reserved",
		},
		{
			name:    "two literals with one kind name",
			src:     "A = 'foo' 'foo_kw'",
			opts:    Options{TokenClasses: []string{"foo_kw"}},
			rule:    "A",
			wantMsg: "same kind FooKw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grammar.Parse("test.gram", []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			_, err = Build(g, tt.opts)
			if err == nil {
				t.Fatal("Build succeeded, want error")
			}
			var resErr *ResolutionError
			if !errors.As(err, &resErr) {
				t.Fatalf("error type = %T, want *ResolutionError", err)
			}
			if resErr.Rule != tt.rule {
				t.Errorf("error rule = %q, want %q", resErr.Rule, tt.rule)
			}
			if !strings.Contains(resErr.Msg, tt.wantMsg) {
				t.Errorf("error msg = %q, want it to contain %q", resErr.Msg, tt.wantMsg)
			}
		})
	}
}

func TestTokenTable(t *testing.T) {
	m := buildModel(t, "Fn = 'fn' Name ParamList\nName = 'ident'\nParamList = '(' (Name (',' Name)*)? ')'")
	want := []TokenInfo{
		{Literal: "fn", Name: "FnKw"},
		{Literal: "ident", Name: "Ident"},
		{Literal: "(", Name: "LParen"},
		{Literal: ",", Name: "Comma"},
		{Literal: ")", Name: "RParen"},
	}
	if !reflect.DeepEqual(m.Tokens, want) {
		t.Errorf("tokens = %v, want %v", m.Tokens, want)
	}
}

func TestConcretes(t *testing.T) {
	src := "Stmt = Item | LetStmt\nItem = Const | Use\nConst = 'const'\nUse = 'use'\nLetStmt = 'let'"

	t.Run("sums expand transitively", func(t *testing.T) {
		m := buildModel(t, src)
		got := m.Concretes("Stmt")
		want := []string{"Const", "Use", "LetStmt"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Concretes(Stmt) = %v, want %v", got, want)
		}
	})

	t.Run("concrete rules are their own expansion", func(t *testing.T) {
		m := buildModel(t, src)
		got := m.Concretes("Const")
		if !reflect.DeepEqual(got, []string{"Const"}) {
			t.Errorf("Concretes(Const) = %v, want [Const]", got)
		}
	})

	t.Run("mutually recursive sums terminate", func(t *testing.T) {
		m := buildModel(t, "A = B | C\nB = A | D\nC = 'c'\nD = 'd'")
		got := m.Concretes("A")
		want := []string{"D", "C"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Concretes(A) = %v, want %v", got, want)
		}
	})

	t.Run("sums containing", func(t *testing.T) {
		m := buildModel(t, src)
		got := m.SumsContaining("Const")
		want := []string{"Stmt", "Item"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("SumsContaining(Const) = %v, want %v", got, want)
		}
	})
}

func TestBuildDeterministic(t *testing.T) {
	src := "Item = Const | Use\nConst = 'const' Name ';'\nUse = 'use' Name ';'\nName = 'ident'"
	g1, err := grammar.Parse("test.gram", []byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	g2, err := grammar.Parse("test.gram", []byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	m1, err := Build(g1, Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	m2, err := Build(g2, Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Error("two builds of the same grammar differ")
	}
}
