package infra

import (
	"context"
	"github.com/bits-and-blooms/bloom/v3"
	"strings"
	"unicode/utf8"
)

// WordListChecker reports profanity when any configured word occurs in the
// text, ignoring case. Candidate substrings are screened by a bloom filter
// before the exact lookup.
type WordListChecker struct {
	filter  *bloom.BloomFilter
	words   map[string]struct{}
	longest int
}

func NewWordListChecker(words []string) *WordListChecker {
	n := uint(len(words))
	if n == 0 {
		n = 1
	}
	c := &WordListChecker{
		filter: bloom.NewWithEstimates(n, 0.001),
		words:  make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		c.filter.AddString(w)
		c.words[w] = struct{}{}
		if l := utf8.RuneCountInString(w); l > c.longest {
			c.longest = l
		}
	}
	return c
}

func (c *WordListChecker) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	runes := []rune(strings.ToLower(text))
	for i := range runes {
		for l := 1; l <= c.longest && i+l <= len(runes); l++ {
			candidate := string(runes[i : i+l])
			if !c.filter.TestString(candidate) {
				continue
			}
			if _, ok := c.words[candidate]; ok {
				return true, nil
			}
		}
	}
	return false, nil
}
