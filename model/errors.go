package model

import "fmt"

// ResolutionError reports a grammar that parsed but does not describe a
// coherent model: undefined rule references, duplicate or nested labels,
// or token literals with no kind name.
type ResolutionError struct {
	Rule string
	Msg  string
}

func (e *ResolutionError) Error() string {
	if e.Rule == "" {
		return "grammar model: " + e.Msg
	}
	return fmt.Sprintf("grammar model: rule %s: %s", e.Rule, e.Msg)
}

func resolutionErr(rule string, format string, args ...any) error {
	return &ResolutionError{Rule: rule, Msg: fmt.Sprintf(format, args...)}
}
