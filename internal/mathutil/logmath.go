package mathutil

import "math"

// Log2 returns log2(p). A non-positive p is replaced by floor when floor > 0;
// otherwise ok is false and the result is -Inf.
func Log2(p, floor float64) (lp float64, ok bool) {
	if p <= 0 {
		if floor <= 0 {
			return math.Inf(-1), false
		}
		p = floor
	}
	return math.Log2(p), true
}

// Normalize scales w in place so that it sums to 1 and returns the
// original sum. It returns false, leaving w untouched, when w is empty, has a
// negative entry or does not sum to a positive finite number.
func Normalize(w []float64) (float64, bool) {
	sum := 0.0
	for _, v := range w {
		if v < 0 {
			return 0, false
		}
		sum += v
	}
	if len(w) == 0 || sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return sum, false
	}
	for i := range w {
		w[i] /= sum
	}
	return sum, true
}
