package codegen

import (
	"crypto/sha256"
	"io"
	"sync"
)

// Cache memoizes generated output keyed by grammar content and options.
// Regenerating an unchanged grammar costs one hash. Safe for concurrent
// use.
type Cache struct {
	mu     sync.Mutex
	files  map[[sha256.Size]byte][]File
	hits   int
	misses int
}

func NewCache() *Cache {
	return &Cache{files: make(map[[sha256.Size]byte][]File)}
}

// GetOrGenerate returns the cached files for this grammar and options
// pair, running the pipeline on first sight. Errors are not cached. The
// name feeds error positions only and is not part of the key.
func (c *Cache) GetOrGenerate(name string, src []byte, tokenClasses []string, opts Options) ([]File, error) {
	key := cacheKey(src, tokenClasses, opts)

	c.mu.Lock()
	if files, ok := c.files[key]; ok {
		c.hits++
		c.mu.Unlock()
		return files, nil
	}
	c.misses++
	c.mu.Unlock()

	files, err := FromSource(name, src, tokenClasses, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.files[key] = files
	c.mu.Unlock()
	return files, nil
}

// Stats reports how many lookups were served from the cache and how many
// ran the pipeline.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func cacheKey(src []byte, tokenClasses []string, opts Options) [sha256.Size]byte {
	h := sha256.New()
	h.Write(src)
	for _, class := range tokenClasses {
		io.WriteString(h, "\x00"+class)
	}
	io.WriteString(h, "\x01"+opts.PackageName)
	io.WriteString(h, "\x01"+opts.SyntreeImport)
	io.WriteString(h, "\x01"+opts.KindsFile)
	io.WriteString(h, "\x01"+opts.NodesFile)
	var key [sha256.Size]byte
	h.Sum(key[:0])
	return key
}
