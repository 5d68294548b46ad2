package ast

import (
	"testing"

	"github.com/sable-lang/sable/codegen"
)

// kinds.go and nodes.go are generated from sable.gram and committed. This
// test regenerates them in memory and fails on drift, so grammar edits
// that skip regeneration are caught in CI rather than at review time.
func TestGeneratedSourcesUpToDate(t *testing.T) {
	files, err := codegen.FromSource("sable.gram", GrammarSource, nil, codegen.Options{
		PackageName:   "ast",
		SyntreeImport: "github.com/sable-lang/sable/syntree",
	})
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}
	diff, clean, err := codegen.Diff(".", files)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if !clean {
		t.Errorf("generated sources are stale; run `syntaxgen generate` and commit the result\n%s", diff)
	}
}
