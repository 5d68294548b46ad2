package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDiffCleanAfterWrite(t *testing.T) {
	dir := t.TempDir()
	files := generate(t, tinyGrammar, tinyOpts)

	if _, err := WriteFiles(dir, files); err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}
	diff, clean, err := Diff(dir, files)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if !clean {
		t.Errorf("clean = false after write, diff:\n%s", diff)
	}
	if diff != "" {
		t.Errorf("diff = %q, want empty", diff)
	}
}

func TestDiffReportsDrift(t *testing.T) {
	dir := t.TempDir()
	files := generate(t, tinyGrammar, tinyOpts)
	if _, err := WriteFiles(dir, files); err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}

	edited := append([]byte(nil), files[0].Content...)
	edited = append(edited, []byte("// local edit\n")...)
	if err := os.WriteFile(filepath.Join(dir, files[0].Name), edited, 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	diff, clean, err := Diff(dir, files)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if clean {
		t.Fatal("clean = true, want drift")
	}
	for _, want := range []string{"kinds.go (committed)", "kinds.go (generated)", "-// local edit"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
	if strings.Contains(diff, "nodes.go") {
		t.Error("diff mentions nodes.go, which did not drift")
	}
}

func TestDiffMissingCommittedFile(t *testing.T) {
	dir := t.TempDir()
	files := generate(t, tinyGrammar, tinyOpts)

	diff, clean, err := Diff(dir, files)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if clean {
		t.Fatal("clean = true for empty directory, want drift")
	}
	if !strings.Contains(diff, "+package ast") {
		t.Errorf("diff does not show the generated content:\n%s", diff)
	}
}

func TestWriteFilesSkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	files := generate(t, tinyGrammar, tinyOpts)
	written, err := WriteFiles(dir, files)
	if err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}
	if len(written) != len(files) {
		t.Fatalf("first write reported %d paths, want %d", len(written), len(files))
	}

	past := time.Now().Add(-time.Hour)
	path := filepath.Join(dir, files[0].Name)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("Chtimes error: %v", err)
	}

	written, err = WriteFiles(dir, files)
	if err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("second write reported %v, want none", written)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if info.ModTime().After(past.Add(time.Minute)) {
		t.Error("unchanged file was rewritten")
	}
}

func TestWriteFilesCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gen", "ast")
	files := generate(t, tinyGrammar, tinyOpts)
	written, err := WriteFiles(dir, files)
	if err != nil {
		t.Fatalf("WriteFiles error: %v", err)
	}
	if len(written) != len(files) {
		t.Fatalf("len(written) = %d, want %d", len(written), len(files))
	}
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dir, f.Name)); err != nil {
			t.Errorf("missing %s: %v", f.Name, err)
		}
	}
}
