package assistant

import (
	"math"
	"regexp"
	"strings"

	"github.com/trezcool/darasa/core/knowledge"
)

// MatchThreshold is the minimum cosine similarity a knowledge base item
// must clear to be returned as a match.
const MatchThreshold = 0.3

// tokens are lowercased runs of 2+ word characters.
var tokenRegex = regexp.MustCompile(`\w\w+`)

// Match is a knowledge base item paired with its similarity to the query.
type Match struct {
	Item  knowledge.Item
	Score float64
}

// Retriever ranks a knowledge corpus against free text by TF-IDF weighted
// cosine similarity. It holds no state; every call vectorizes the given
// corpus plus the query as the final document.
type Retriever struct{}

func NewRetriever() *Retriever {
	return &Retriever{}
}

// Search returns the best-scoring corpus item when its similarity exceeds
// MatchThreshold, and ok=false otherwise. A degenerate corpus (empty, or
// all stop words) yields no match rather than an error.
func (r *Retriever) Search(queryText string, corpus []knowledge.Item) (Match, bool) {
	if len(corpus) == 0 {
		return Match{}, false
	}

	docs := make([][]string, 0, len(corpus)+1)
	for _, item := range corpus {
		docs = append(docs, tokenize(item.Document()))
	}
	docs = append(docs, tokenize(queryText)) // query is the final document

	vectors, ok := vectorize(docs)
	if !ok {
		return Match{}, false
	}

	query := vectors[len(vectors)-1]
	bestIdx, bestScore := -1, 0.0
	for i, doc := range vectors[:len(vectors)-1] {
		if score := dot(query, doc); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx < 0 || bestScore <= MatchThreshold {
		return Match{}, false
	}
	return Match{Item: corpus[bestIdx], Score: bestScore}, true
}

func tokenize(text string) []string {
	var tokens []string
	for _, tok := range tokenRegex.FindAllString(strings.ToLower(text), -1) {
		if _, skip := stopWords[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// vectorize builds L2-normalized TF-IDF vectors over the token documents
// using smoothed document frequencies: idf = ln((1+n)/(1+df)) + 1.
// Cosine similarity between normalized vectors reduces to a dot product.
func vectorize(docs [][]string) ([]map[string]float64, bool) {
	df := make(map[string]int)
	counts := make([]map[string]int, len(docs))
	for i, doc := range docs {
		counts[i] = make(map[string]int, len(doc))
		for _, tok := range doc {
			counts[i][tok]++
		}
		for tok := range counts[i] {
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, false
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for tok, freq := range df {
		idf[tok] = math.Log((1+n)/(1+float64(freq))) + 1
	}

	vectors := make([]map[string]float64, len(docs))
	for i, count := range counts {
		vec := make(map[string]float64, len(count))
		var norm float64
		for tok, tf := range count {
			w := float64(tf) * idf[tok]
			vec[tok] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for tok := range vec {
				vec[tok] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors, true
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for tok, w := range a {
		sum += w * b[tok]
	}
	return sum
}
