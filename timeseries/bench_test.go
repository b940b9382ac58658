package timeseries_test

import (
	"testing"

	"github.com/katalvlaran/stimwave/timeseries"
)

// BenchmarkNew_10k measures constructing a 10 000-sample series,
// dominated by the copy of the sample buffer.
func BenchmarkNew_10k(b *testing.B) {
	data := make([]float64, 10_000)
	for i := range data {
		data[i] = float64(i % 3)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := timeseries.New(1e-5, data); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkScaled_10k measures sample-wise scaling of a 10 000-sample
// series.
func BenchmarkScaled_10k(b *testing.B) {
	ts, err := timeseries.Zeros(1e-5, 10_000)
	if err != nil {
		b.Fatalf("Zeros failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ts.Scaled(20)
	}
}
