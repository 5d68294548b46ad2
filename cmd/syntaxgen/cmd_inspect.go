package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sable-lang/sable/grammar"
	"github.com/sable-lang/sable/model"
)

func newInspectCmd() *cobra.Command {
	var configPath string
	var grammarPath string
	var outputFormat string
	var ruleName string

	cmd := &cobra.Command{
		Use:          "inspect",
		Short:        "Print the rule model derived from the grammar",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := resolveGenerate(cmd, configPath, grammarPath, "", "")
			if err != nil {
				return err
			}
			src, err := os.ReadFile(gen.Grammar)
			if err != nil {
				return fmt.Errorf("read grammar: %w", err)
			}
			g, err := grammar.Parse(gen.Grammar, src)
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			m, err := model.Build(g, model.Options{TokenClasses: gen.TokenClasses})
			if err != nil {
				return fmt.Errorf("build model: %w", err)
			}

			rules := m.Rules
			tokens := m.Tokens
			if ruleName != "" {
				rule := m.Rule(ruleName)
				if rule == nil {
					return fmt.Errorf("no rule named %s", ruleName)
				}
				rules = []*model.Rule{rule}
				tokens = nil
			}

			switch outputFormat {
			case "text":
				writeModelText(os.Stdout, rules, tokens)
				return nil
			case "json":
				return writeModelJSON(os.Stdout, rules, tokens)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the syntaxgen config file")
	cmd.Flags().StringVar(&grammarPath, "grammar", "", "grammar file to load (overrides config)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")
	cmd.Flags().StringVar(&ruleName, "rule", "", "show only the named rule")

	return cmd
}

func writeModelText(w io.Writer, rules []*model.Rule, tokens []model.TokenInfo) {
	for _, rule := range rules {
		switch rule.Shape {
		case model.Sum:
			fmt.Fprintf(w, "%s: Sum = %s\n", rule.Name, strings.Join(rule.Variants, " | "))
		case model.TokenEnum:
			quoted := make([]string, len(rule.Literals))
			for i, lit := range rule.Literals {
				quoted[i] = "'" + lit + "'"
			}
			fmt.Fprintf(w, "%s: TokenEnum = %s\n", rule.Name, strings.Join(quoted, " | "))
		default:
			fmt.Fprintf(w, "%s: Product\n", rule.Name)
			for _, f := range rule.Fields {
				mark := ""
				if f.Inferred {
					mark = " (inferred)"
				}
				fmt.Fprintf(w, "  %s %s %s%s\n", f.Name, f.Card, targetList(f.Targets), mark)
			}
			for _, c := range rule.Collisions {
				if c.Accessor == "" {
					fmt.Fprintf(w, "  collision %s: %d occurrences, sequence accessor suppressed\n", c.Field, c.Count)
				} else {
					fmt.Fprintf(w, "  collision %s: %d occurrences via %s()\n", c.Field, c.Count, c.Accessor)
				}
			}
		}
	}
	if len(tokens) > 0 {
		fmt.Fprintln(w, "tokens:")
		for _, tok := range tokens {
			fmt.Fprintf(w, "  %-12s '%s'\n", tok.Name, tok.Literal)
		}
	}
}

type modelView struct {
	Rules  []ruleView  `json:"rules"`
	Tokens []tokenView `json:"tokens,omitempty"`
}

type ruleView struct {
	Name       string          `json:"name"`
	Shape      string          `json:"shape"`
	Variants   []string        `json:"variants,omitempty"`
	Literals   []string        `json:"literals,omitempty"`
	Fields     []fieldView     `json:"fields,omitempty"`
	Collisions []collisionView `json:"collisions,omitempty"`
}

type fieldView struct {
	Name        string   `json:"name"`
	Cardinality string   `json:"cardinality"`
	Targets     []string `json:"targets"`
	Inferred    bool     `json:"inferred,omitempty"`
}

type collisionView struct {
	Field    string   `json:"field"`
	Accessor string   `json:"accessor,omitempty"`
	Count    int      `json:"count"`
	Targets  []string `json:"targets"`
}

type tokenView struct {
	Name    string `json:"name"`
	Literal string `json:"literal"`
}

func writeModelJSON(w io.Writer, rules []*model.Rule, tokens []model.TokenInfo) error {
	view := modelView{Rules: make([]ruleView, len(rules))}
	for i, rule := range rules {
		rv := ruleView{
			Name:     rule.Name,
			Shape:    rule.Shape.String(),
			Variants: rule.Variants,
			Literals: rule.Literals,
		}
		for _, f := range rule.Fields {
			rv.Fields = append(rv.Fields, fieldView{
				Name:        f.Name,
				Cardinality: f.Card.String(),
				Targets:     targetStrings(f.Targets),
				Inferred:    f.Inferred,
			})
		}
		for _, c := range rule.Collisions {
			rv.Collisions = append(rv.Collisions, collisionView{
				Field:    c.Field,
				Accessor: c.Accessor,
				Count:    c.Count,
				Targets:  targetStrings(c.Targets),
			})
		}
		view.Rules[i] = rv
	}
	for _, tok := range tokens {
		view.Tokens = append(view.Tokens, tokenView{Name: tok.Name, Literal: tok.Literal})
	}
	text, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = w.Write(text)
	return err
}

func targetStrings(targets []model.Target) []string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = t.String()
	}
	return parts
}

func targetList(targets []model.Target) string {
	return strings.Join(targetStrings(targets), " | ")
}
