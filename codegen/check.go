package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff compares freshly generated files against the committed ones under
// dir. It returns a unified diff of every file that drifted and whether
// the tree is clean. A missing committed file counts as drift.
func Diff(dir string, files []File) (string, bool, error) {
	var out strings.Builder
	clean := true
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		committed, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return "", false, err
			}
			committed = nil
		}
		if bytes.Equal(committed, f.Content) {
			continue
		}
		clean = false
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(committed)),
			B:        difflib.SplitLines(string(f.Content)),
			FromFile: path + " (committed)",
			ToFile:   path + " (generated)",
			Context:  3,
		})
		if err != nil {
			return "", false, err
		}
		out.WriteString(text)
	}
	return out.String(), clean, nil
}
