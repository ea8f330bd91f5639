package memory

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// defaultDimensions is the vector width of the built-in embedder.
const defaultDimensions = 256

// Embedder turns texts into unit-length vectors. Implementations backed by a
// hosted embedding model satisfy this too; the engine only assumes cosine
// similarity over the results.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// HashingEmbedder is a deterministic, dependency-free embedder using feature
// hashing over lowercased word tokens. Texts sharing vocabulary score high;
// unrelated texts score near zero. It needs no model download, which keeps
// the memory store usable offline and in tests.
type HashingEmbedder struct {
	dims int
}

// NewHashingEmbedder builds an embedder with the given vector width.
func NewHashingEmbedder(dims int) *HashingEmbedder {
	if dims <= 0 {
		dims = defaultDimensions
	}
	return &HashingEmbedder{dims: dims}
}

// Embed hashes each text's tokens into a fixed-width vector and
// L2-normalizes it. A text with no tokens embeds as the zero vector.
func (e *HashingEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = e.embedOne(text)
	}
	return vectors, nil
}

func (e *HashingEmbedder) embedOne(text string) []float32 {
	vec := make([]float32, e.dims)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%uint32(e.dims)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// cosineSimilarity assumes unit-length inputs, so the dot product is the
// cosine. Mismatched lengths score zero.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
