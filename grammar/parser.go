package grammar

import "strings"

// Parse loads grammar notation into a Grammar. The file name appears in
// error positions only; src is the whole notation text.
func Parse(file string, src []byte) (*Grammar, error) {
	p := &parser{}
	if err := p.tokenize(NewLexer(src, file)); err != nil {
		return nil, err
	}
	return p.parseGrammar()
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) tokenize(lexer *Lexer) error {
	for {
		tok := lexer.NextToken()
		switch tok.Kind {
		case TokenWhitespace, TokenComment:
			continue
		case TokenError:
			if strings.HasPrefix(tok.Literal, "'") {
				return errAt(tok.Span.Start, "unterminated token literal")
			}
			return errAt(tok.Span.Start, "unexpected character %q", tok.Literal)
		}
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			return nil
		}
	}
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos+n]
}

func (p *parser) advance() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, errAt(tok.Span.Start, "expected %s, found %s", what, tok.Kind)
}

func (p *parser) parseGrammar() (*Grammar, error) {
	g := &Grammar{index: make(map[string]*Rule)}
	for !p.check(TokenEOF) {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		if g.index[rule.Name] != nil {
			return nil, errAt(rule.Pos, "duplicate rule %s", rule.Name)
		}
		g.Rules = append(g.Rules, rule)
		g.index[rule.Name] = rule
	}
	return g, nil
}

func (p *parser) parseRule() (*Rule, error) {
	name, err := p.expect(TokenIdent, "rule name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenEq, "'='"); err != nil {
		return nil, err
	}
	body, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	return &Rule{Name: name.Literal, Pos: name.Span.Start, Body: body}, nil
}

// parseAlt parses seq ('|' seq)*. Alternation binds loosest.
func (p *parser) parseAlt() (Body, error) {
	first, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	if !p.check(TokenPipe) {
		return first, nil
	}
	branches := []Body{first}
	for p.match(TokenPipe) {
		branch, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	return &Alt{Branches: branches}, nil
}

// parseSeq parses one or more juxtaposed atoms. An empty sequence is an
// error, which also rejects empty alternation branches and empty groups.
func (p *parser) parseSeq() (Body, error) {
	var items []Body
	for p.atAtomStart() {
		item, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		tok := p.peek()
		return nil, errAt(tok.Span.Start, "expected rule body element, found %s", tok.Kind)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &Seq{Items: items}, nil
}

// atAtomStart reports whether the next token can begin a body atom. An
// identifier followed by '=' begins the next rule instead, which is how
// bodies end without any terminator.
func (p *parser) atAtomStart() bool {
	switch p.peek().Kind {
	case TokenLiteral, TokenLParen:
		return true
	case TokenIdent:
		return p.peekN(1).Kind != TokenEq
	}
	return false
}

// parseAtom parses (label ':')? primary ('?' | '*')*. A label binds the
// atom including its postfix: fields:(X)* is Labeled(fields, Rep(X)).
func (p *parser) parseAtom() (Body, error) {
	if p.check(TokenIdent) && p.peekN(1).Kind == TokenColon {
		label := p.advance()
		p.advance()
		inner, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return &Labeled{Label: label.Literal, Pos: label.Span.Start, Body: inner}, nil
	}

	body, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(TokenQuestion):
			body = &Opt{Body: body}
		case p.match(TokenStar):
			body = &Rep{Body: body}
		default:
			return body, nil
		}
	}
}

func (p *parser) parsePrimary() (Body, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenIdent:
		p.advance()
		return &Ref{Name: tok.Literal, Pos: tok.Span.Start}, nil
	case TokenLiteral:
		p.advance()
		if tok.Literal == "" {
			return nil, errAt(tok.Span.Start, "empty token literal")
		}
		return &Literal{Text: tok.Literal, Pos: tok.Span.Start}, nil
	case TokenLParen:
		p.advance()
		body, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return body, nil
	}
	return nil, errAt(tok.Span.Start, "expected rule body element, found %s", tok.Kind)
}
