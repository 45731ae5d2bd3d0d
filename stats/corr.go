package stats

import "math"

// CorrValues is the Pearson correlation of two plain slices of equal
// length, used for already-aggregated series.
func CorrValues(a, b []float64) float64 {
	n := len(a)
	if n < 2 || n != len(b) {
		return math.NaN()
	}

	var sumA, sumB, sumAB, sumA2, sumB2 float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
		sumAB += a[i] * b[i]
		sumA2 += a[i] * a[i]
		sumB2 += b[i] * b[i]
	}

	fn := float64(n)
	cov := sumAB/fn - (sumA/fn)*(sumB/fn)
	stdA := math.Sqrt(sumA2/fn - (sumA/fn)*(sumA/fn))
	stdB := math.Sqrt(sumB2/fn - (sumB/fn)*(sumB/fn))

	if stdA == 0 || stdB == 0 {
		return math.NaN()
	}
	return cov / (stdA * stdB)
}
