// Package stats computes the descriptive statistics the analysis
// binary and the dashboard narrate: null-aware means, correlations,
// quantiles and grouped summaries over frame columns.
package stats

import (
	"math"
	"sort"

	"github.com/gmlima/censodata/frame"
	"github.com/gmlima/censodata/ops"
)

// Values extracts the valid numeric entries of a column.
func Values(c *frame.Column) []float64 {
	out := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.Valid[i] {
			out = append(out, c.Float(i))
		}
	}
	return out
}

func Sum(c *frame.Column) float64 {
	sum := 0.0
	for i := 0; i < c.Len(); i++ {
		if c.Valid[i] {
			sum += c.Float(i)
		}
	}
	return sum
}

func Mean(c *frame.Column) float64 {
	sum := 0.0
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.Valid[i] {
			sum += c.Float(i)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Std computes the population standard deviation in a single pass.
func Std(c *frame.Column) float64 {
	sum, sumSq := 0.0, 0.0
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.Valid[i] {
			v := c.Float(i)
			sum += v
			sumSq += v * v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	fn := float64(n)
	mean := sum / fn
	return math.Sqrt((sumSq / fn) - mean*mean)
}

func MinMax(c *frame.Column) (min, max float64, ok bool) {
	var bounds ops.Bounds[float64]

	if c.Type == frame.Float64Field {
		bounds, ok = ops.GetMaxMin(c.Floats, c.Valid)
	} else {
		bounds, ok = ops.GetMaxMin(floatCopy(c), c.Valid)
	}
	return bounds.Min, bounds.Max, ok
}

func floatCopy(c *frame.Column) []float64 {
	out := make([]float64, len(c.Ints))
	for i, v := range c.Ints {
		out[i] = float64(v)
	}
	return out
}

// Corr is the Pearson correlation over rows where both columns are
// valid. NaN when fewer than two paired values exist or a side is
// constant.
func Corr(a, b *frame.Column) float64 {
	var sumA, sumB, sumAB, sumA2, sumB2 float64
	n := 0

	for i := 0; i < a.Len(); i++ {
		if !a.Valid[i] || !b.Valid[i] {
			continue
		}
		va := a.Float(i)
		vb := b.Float(i)
		sumA += va
		sumB += vb
		sumAB += va * vb
		sumA2 += va * va
		sumB2 += vb * vb
		n++
	}

	if n < 2 {
		return math.NaN()
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

// Quantile returns the q-quantile (0..1) of the valid values, linear
// interpolation between the two nearest ranks.
func Quantile(c *frame.Column, q float64) float64 {
	values := Values(c)
	if len(values) == 0 {
		return math.NaN()
	}

	sort.Float64s(values)

	if q <= 0 {
		return values[0]
	}
	if q >= 1 {
		return values[len(values)-1]
	}

	pos := q * float64(len(values)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return values[lo]
	}

	frac := pos - float64(lo)
	return values[lo]*(1-frac) + values[hi]*frac
}
