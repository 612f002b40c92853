package similarity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction,
// 0 means orthogonal, and -1 means opposite direction.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	if len(a) == 0 {
		return 0
	}

	dotProduct := floats.Dot(a, b)

	magA := math.Sqrt(floats.Dot(a, a))
	magB := math.Sqrt(floats.Dot(b, b))

	// Avoid division by zero
	if magA == 0 || magB == 0 {
		return 0
	}

	return dotProduct / (magA * magB)
}

// MaxSimilarity returns the highest cosine similarity between v and any of
// the candidate vectors. Returns 0 when candidates is empty.
func MaxSimilarity(v []float64, candidates [][]float64) float64 {
	best := 0.0
	for _, c := range candidates {
		if sim := CosineSimilarity(v, c); sim > best {
			best = sim
		}
	}
	return best
}
