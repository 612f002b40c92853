package parser

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// sentenceTokenizer returns the shared English sentence tokenizer. Loading
// the training data is expensive, so it happens once per process on first
// use; the tokenizer is immutable and safe for concurrent use.
var sentenceTokenizer = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

func splitSentences(text string) []string {
	tokenizer, err := sentenceTokenizer()
	if err != nil {
		// Without the training data, fall back to one item for the
		// whole text
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return []string{}
	}

	items := make([]string, 0)
	for _, s := range tokenizer.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
