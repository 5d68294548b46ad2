package model

import (
	"github.com/iancoleman/strcase"
)

// punctNames maps punctuation literals to kind base names. A literal that
// is neither here nor word-shaped cannot be named and is rejected during
// model building.
var punctNames = map[string]string{
	"(":   "LParen",
	")":   "RParen",
	"{":   "LBrace",
	"}":   "RBrace",
	"[":   "LBracket",
	"]":   "RBracket",
	",":   "Comma",
	";":   "Semicolon",
	".":   "Dot",
	"..":  "DotDot",
	"..=": "DotDotEq",
	"...": "Ellipsis",
	":":   "Colon",
	"::":  "ColonColon",
	"=":   "Assign",
	"==":  "Eq",
	"!=":  "Ne",
	"<":   "Lt",
	"<=":  "Le",
	">":   "Gt",
	">=":  "Ge",
	"+":   "Plus",
	"-":   "Minus",
	"*":   "Star",
	"/":   "Slash",
	"%":   "Percent",
	"!":   "Not",
	"&&":  "And",
	"||":  "Or",
	"&":   "Amp",
	"|":   "Pipe",
	"^":   "Caret",
	"<<":  "Shl",
	">>":  "Shr",
	"->":  "Arrow",
	"=>":  "FatArrow",
	"+=":  "PlusAssign",
	"-=":  "MinusAssign",
	"*=":  "StarAssign",
	"/=":  "SlashAssign",
	"%=":  "PercentAssign",
	"?":   "Question",
	"@":   "At",
	"#":   "Pound",
	"_":   "Underscore",
}

// DefaultTokenClasses are the lexer-supplied token classes assumed when
// Options.TokenClasses is nil. A class literal names a whole family of
// source tokens (any identifier, any integer), unlike a keyword which
// matches itself.
var DefaultTokenClasses = []string{
	"ident",
	"int_number",
	"float_number",
	"string",
	"char",
}

func isWordLiteral(lit string) bool {
	for i := 0; i < len(lit); i++ {
		ch := lit[i]
		switch {
		case ch == '_':
		case 'a' <= ch && ch <= 'z':
		case 'A' <= ch && ch <= 'Z':
		case '0' <= ch && ch <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(lit) > 0
}

// tokenKindName maps a token literal to its kind base name: punctuation
// through the fixed table, configured token classes as themselves, and any
// other word literal as a keyword.
func tokenKindName(lit string, classes map[string]bool) (string, bool) {
	if name, ok := punctNames[lit]; ok {
		return name, true
	}
	if !isWordLiteral(lit) {
		return "", false
	}
	if classes[lit] {
		return strcase.ToCamel(lit), true
	}
	return strcase.ToCamel(lit) + "Kw", true
}
