package stats

import (
	"math"
	"testing"
)

// FuzzQuantile fuzzes the quantile calculation with arbitrary values and fractions.
func FuzzQuantile(f *testing.F) {
	f.Add(150.0, 180.0, 320.0, 0.8)
	f.Add(0.0, 0.0, 0.0, 0.5)
	f.Add(-10.0, 10.0, 0.0, 1.5)
	f.Add(95.0, 400.0, 210.0, -0.25)

	f.Fuzz(func(t *testing.T, a, b, c, q float64) {
		values := []float64{a, b, c}
		for _, v := range values {
			if math.IsNaN(v) {
				t.Skip("non-finite input")
			}
			// Very large magnitudes overflow the interpolation step.
			if math.Abs(v) > 1e150 {
				t.Skip("magnitude overflows intermediates")
			}
		}

		got := Quantile(values, q)

		minVal, maxVal := MinMax(values)
		if got < minVal || got > maxVal {
			t.Errorf("Quantile(%v, %v) = %v, outside [%v, %v]", values, q, got, minVal, maxVal)
		}
	})
}

// FuzzPearson fuzzes the correlation with arbitrary paired series.
func FuzzPearson(f *testing.F) {
	f.Add(150.0, 180.0, 320.0, 0.3, 0.6, 0.9)
	f.Add(1.0, 1.0, 1.0, 0.1, 0.5, 0.9)
	f.Add(-5.0, 0.0, 5.0, 5.0, 0.0, -5.0)

	f.Fuzz(func(t *testing.T, x1, x2, x3, y1, y2, y3 float64) {
		xs := []float64{x1, x2, x3}
		ys := []float64{y1, y2, y3}
		for i := range xs {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				t.Skip("non-finite input")
			}
			// Very large magnitudes overflow the intermediate products.
			if math.Abs(xs[i]) > 1e150 || math.Abs(ys[i]) > 1e150 {
				t.Skip("magnitude overflows intermediates")
			}
		}

		got := Pearson(xs, ys)

		if math.IsNaN(got) {
			t.Errorf("Pearson(%v, %v) = NaN", xs, ys)
		}
		if got < -1.0000001 || got > 1.0000001 {
			t.Errorf("Pearson(%v, %v) = %v, outside [-1, 1]", xs, ys, got)
		}
	})
}
