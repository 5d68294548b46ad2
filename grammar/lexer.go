package grammar

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) NextToken() Token {
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()

	if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
		return l.scanWhitespace(start)
	}

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanComment(start)
	}

	if isIdentStart(ch) {
		return l.scanIdent(start)
	}

	if ch == '\'' {
		return l.scanLiteral(start)
	}

	switch ch {
	case '=':
		return l.scanSymbol(start, TokenEq)
	case '|':
		return l.scanSymbol(start, TokenPipe)
	case '*':
		return l.scanSymbol(start, TokenStar)
	case '?':
		return l.scanSymbol(start, TokenQuestion)
	case ':':
		return l.scanSymbol(start, TokenColon)
	case '(':
		return l.scanSymbol(start, TokenLParen)
	case ')':
		return l.scanSymbol(start, TokenRParen)
	}

	l.advance()
	end := l.Position()
	return Token{
		Kind:    TokenError,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
	end := l.Position()
	return Token{
		Kind:    TokenWhitespace,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) scanComment(start Position) Token {
	l.advanceN(2)
	for l.peek() != 0 && l.peek() != '\n' {
		l.advance()
	}
	end := l.Position()
	return Token{
		Kind:    TokenComment,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) scanIdent(start Position) Token {
	for isIdentPart(l.peek()) {
		l.advance()
	}
	end := l.Position()
	return Token{
		Kind:    TokenIdent,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

// scanLiteral scans a single-quoted token literal. There are no escapes;
// a literal may not span a line. The Literal field of the returned token
// excludes the quotes.
func (l *Lexer) scanLiteral(start Position) Token {
	l.advance()
	for {
		ch := l.peek()
		if ch == 0 || ch == '\n' {
			end := l.Position()
			return Token{
				Kind:    TokenError,
				Span:    Span{Start: start, End: end},
				Literal: string(l.input[start.Offset:end.Offset]),
			}
		}
		if ch == '\'' {
			l.advance()
			end := l.Position()
			return Token{
				Kind:    TokenLiteral,
				Span:    Span{Start: start, End: end},
				Literal: string(l.input[start.Offset+1 : end.Offset-1]),
			}
		}
		l.advance()
	}
}

func (l *Lexer) scanSymbol(start Position, kind TokenKind) Token {
	l.advance()
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9')
}
