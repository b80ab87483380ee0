// Package query selects lines of a tree listing by regular expression.
package query

import (
	"strings"
	"sync"

	"github.com/coregx/coregex"
)

// Regex wraps coregex for matching listing lines.
type Regex struct {
	pattern string
	re      *coregex.Regexp
}

// Compile creates a new Regex from pattern.
// Matching is leftmost-longest so that highlighted spans cover the
// whole match.
func Compile(pattern string) (*Regex, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	re.Longest()
	return &Regex{pattern: pattern, re: re}, nil
}

// MustCompile creates a Regex, panicking on error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the original pattern string.
func (r *Regex) Pattern() string {
	return r.pattern
}

// MatchString reports whether s contains any match.
func (r *Regex) MatchString(s string) bool {
	return r.re.MatchString(s)
}

// FindStringIndex returns the start and end of the first match, or nil.
func (r *Regex) FindStringIndex(s string) []int {
	return r.re.FindStringIndex(s)
}

// Lines returns the lines of text that contain a match, in order, each
// terminated by a newline. Lines are split on "\n"; a missing final
// newline is added.
func (r *Regex) Lines(text string) string {
	var sb strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimSuffix(line, "\n")
		if body == "" && line == "" {
			continue
		}
		if r.re.MatchString(body) {
			sb.WriteString(body)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RegexCache provides thread-safe compiled regex caching with FIFO eviction.
// Reads are lock-free via sync.Map.
type RegexCache struct {
	cache   sync.Map   // map[string]*Regex
	orderMu sync.Mutex // Protects order and size
	order   []string   // FIFO order for eviction
	size    int
	maxSize int
}

// NewRegexCache creates a cache holding at most maxSize patterns.
// A non-positive maxSize selects 100.
func NewRegexCache(maxSize int) *RegexCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &RegexCache{
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Get returns a compiled regex, compiling and caching if needed.
func (c *RegexCache) Get(pattern string) (*Regex, error) {
	if re, ok := c.cache.Load(pattern); ok {
		return re.(*Regex), nil
	}

	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	// Another goroutine might have stored it already
	if existing, loaded := c.cache.LoadOrStore(pattern, re); loaded {
		return existing.(*Regex), nil
	}

	c.orderMu.Lock()
	c.order = append(c.order, pattern)
	c.size++
	for c.size > c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		c.cache.Delete(oldest)
		c.size--
	}
	c.orderMu.Unlock()

	return re, nil
}

// MustGet returns a compiled regex, panicking on error.
func (c *RegexCache) MustGet(pattern string) *Regex {
	re, err := c.Get(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Len returns the number of cached regexes.
func (c *RegexCache) Len() int {
	c.orderMu.Lock()
	n := c.size
	c.orderMu.Unlock()
	return n
}

// Clear removes all cached regexes.
func (c *RegexCache) Clear() {
	c.orderMu.Lock()
	defer c.orderMu.Unlock()
	for _, p := range c.order {
		c.cache.Delete(p)
	}
	c.order = c.order[:0]
	c.size = 0
}

// Filter keeps the lines of text matching pattern, compiling pattern
// through the cache.
func (c *RegexCache) Filter(text, pattern string) (string, error) {
	re, err := c.Get(pattern)
	if err != nil {
		return "", err
	}
	return re.Lines(text), nil
}
