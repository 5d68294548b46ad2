package grammar

import "fmt"

// SyntaxError reports malformed notation. Parsing is fail-fast: the first
// syntax error aborts the whole load.
type SyntaxError struct {
	File string
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

func errAt(pos Position, format string, args ...any) error {
	return &SyntaxError{
		File: pos.File,
		Line: pos.Line,
		Col:  pos.Column,
		Msg:  fmt.Sprintf(format, args...),
	}
}
