package codegen

import (
	"bytes"
	"testing"
)

func TestCacheHitsAndMisses(t *testing.T) {
	c := NewCache()
	src := []byte(tinyGrammar)

	first, err := c.GetOrGenerate("tiny.gram", src, nil, tinyOpts)
	if err != nil {
		t.Fatalf("GetOrGenerate error: %v", err)
	}
	second, err := c.GetOrGenerate("tiny.gram", src, nil, tinyOpts)
	if err != nil {
		t.Fatalf("GetOrGenerate error: %v", err)
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses, want 1 and 1", hits, misses)
	}
	for i := range first {
		if !bytes.Equal(first[i].Content, second[i].Content) {
			t.Errorf("%s differs between cached runs", first[i].Name)
		}
	}
}

func TestCacheKeyCoversOptions(t *testing.T) {
	c := NewCache()
	src := []byte(tinyGrammar)

	if _, err := c.GetOrGenerate("tiny.gram", src, nil, tinyOpts); err != nil {
		t.Fatalf("GetOrGenerate error: %v", err)
	}
	other := tinyOpts
	other.PackageName = "syntax"
	if _, err := c.GetOrGenerate("tiny.gram", src, nil, other); err != nil {
		t.Fatalf("GetOrGenerate error: %v", err)
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 2 {
		t.Errorf("stats = %d hits, %d misses, want 0 and 2", hits, misses)
	}
}

func TestCacheKeyCoversSource(t *testing.T) {
	c := NewCache()

	if _, err := c.GetOrGenerate("a.gram", []byte("A = 'a'"), nil, tinyOpts); err != nil {
		t.Fatalf("GetOrGenerate error: %v", err)
	}
	if _, err := c.GetOrGenerate("a.gram", []byte("A = 'b'"), nil, tinyOpts); err != nil {
		t.Fatalf("GetOrGenerate error: %v", err)
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 2 {
		t.Errorf("stats = %d hits, %d misses, want 0 and 2", hits, misses)
	}
}

func TestCacheDoesNotCacheErrors(t *testing.T) {
	c := NewCache()
	src := []byte("A = Undefined")

	for i := 0; i < 2; i++ {
		if _, err := c.GetOrGenerate("bad.gram", src, nil, tinyOpts); err == nil {
			t.Fatal("GetOrGenerate succeeded, want error")
		}
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 2 {
		t.Errorf("stats = %d hits, %d misses, want 0 and 2", hits, misses)
	}
}
