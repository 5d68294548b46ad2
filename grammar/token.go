package grammar

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment

	TokenIdent
	TokenLiteral

	TokenEq
	TokenPipe
	TokenStar
	TokenQuestion
	TokenColon
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:        "end of input",
	TokenError:      "invalid input",
	TokenWhitespace: "whitespace",
	TokenComment:    "comment",
	TokenIdent:      "identifier",
	TokenLiteral:    "token literal",
	TokenEq:         "'='",
	TokenPipe:       "'|'",
	TokenStar:       "'*'",
	TokenQuestion:   "'?'",
	TokenColon:      "':'",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexical token of the notation. For TokenLiteral the Literal
// field holds the text between the quotes; for all other kinds it holds
// the raw source text.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}
