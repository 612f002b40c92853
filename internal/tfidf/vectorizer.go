package tfidf

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"
)

const defaultMaxConcurrent = 4

// Vectorizer converts a corpus of texts into TF-IDF weighted vectors
type Vectorizer struct {
	stopWords     map[string]bool
	minLength     int
	maxConcurrent int
}

// NewVectorizer creates a vectorizer with the default stop word list
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		stopWords:     defaultStopWords(),
		minLength:     2,
		maxConcurrent: defaultMaxConcurrent,
	}
}

// FitTransform builds a vocabulary from the whole corpus and returns one
// weight vector per text over that vocabulary. The vocabulary is local to
// the call, so vectors from different calls are not comparable.
func (v *Vectorizer) FitTransform(texts []string) [][]float64 {
	if len(texts) == 0 {
		return [][]float64{}
	}

	docs := v.tokenizeAll(texts)

	// Vocabulary: sorted distinct terms mapped to dimensions
	terms := make([]string, 0)
	vocab := make(map[string]int)
	for _, doc := range docs {
		for _, word := range doc {
			if _, ok := vocab[word]; !ok {
				vocab[word] = 0
				terms = append(terms, word)
			}
		}
	}
	sort.Strings(terms)
	for i, term := range terms {
		vocab[term] = i
	}

	// Document frequency for each term
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, word := range doc {
			if !seen[word] {
				df[word]++
				seen[word] = true
			}
		}
	}

	// Smoothed IDF: log((1+N)/(1+df)) + 1. Always positive, so identical
	// texts map to identical nonzero vectors even when a term appears in
	// every document.
	n := len(docs)
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	// Weight: term count in the document times IDF
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vec := make([]float64, len(terms))
		for _, word := range doc {
			j := vocab[word]
			vec[j] += idf[j]
		}
		vectors[i] = vec
	}

	return vectors
}

// tokenizeAll tokenizes every text with bounded concurrency.
// Each goroutine writes only its own slot, so results are deterministic.
func (v *Vectorizer) tokenizeAll(texts []string) [][]string {
	docs := make([][]string, len(texts))

	sem := make(chan struct{}, v.maxConcurrent)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()

			sem <- struct{}{}        // Acquire
			defer func() { <-sem }() // Release

			docs[i] = v.tokenize(text)
		}(i, text)
	}

	wg.Wait()

	return docs
}

func (v *Vectorizer) tokenize(text string) []string {
	// Convert to lowercase
	text = strings.ToLower(text)

	// Split into words
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	// Filter stop words and short words
	result := make([]string, 0)
	for _, word := range words {
		if len(word) >= v.minLength && !v.stopWords[word] {
			result = append(result, word)
		}
	}

	return result
}
