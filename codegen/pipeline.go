package codegen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sable-lang/sable/grammar"
	"github.com/sable-lang/sable/model"
)

// FromSource runs the whole pipeline on grammar text: parse, build the
// model, generate. The name is used in error positions only.
func FromSource(name string, src []byte, tokenClasses []string, opts Options) ([]File, error) {
	g, err := grammar.Parse(name, src)
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	m, err := model.Build(g, model.Options{TokenClasses: tokenClasses})
	if err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}
	return Generate(m, opts)
}

// WriteFiles writes generated files under dir and returns the paths it
// wrote. Files already holding the generated bytes are left untouched, so
// timestamps move only when the output really changed.
func WriteFiles(dir string, files []File) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if have, err := os.ReadFile(path); err == nil && bytes.Equal(have, f.Content) {
			continue
		}
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
