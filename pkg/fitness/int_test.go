package fitness_test

import (
	"testing"

	"github.com/halfbrain/strategist/pkg/fitness"
)

func FuzzIntOrdering(f *testing.F) {
	f.Add(int32(1000), int32(-1000))
	f.Add(int32(2648), int32(7346))
	f.Add(int32(-3683), int32(-8374))

	f.Fuzz(func(t *testing.T, a, b int32) {
		x, y := fitness.Int(a), fitness.Int(b)

		if x.Less(y) != (x < y) {
			t.Errorf("Int(%d).Less(Int(%d)) != %d < %d", x, y, x, y)
		}

		if got, want := fitness.Max(x, y), x; y < x {
			if got != want {
				t.Errorf("Max(%d, %d) = %d, want %d", x, y, got, want)
			}
		}

		if got, want := fitness.Min(x, y), x; x < y {
			if got != want {
				t.Errorf("Min(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	})
}

func TestIntBounds(t *testing.T) {
	if !fitness.Inf.IsUpperBound() {
		t.Error("Inf is not reported as an upper bound")
	}

	if !fitness.Int(0).Worst().IsLowerBound() {
		t.Error("Worst() is not reported as a lower bound")
	}

	if fitness.Int(0).IsUpperBound() || fitness.Int(0).IsLowerBound() {
		t.Error("a mid-range Int was reported as a bound")
	}

	if fitness.Int(0).Best() != fitness.Inf {
		t.Errorf("Best() = %d, want %d", fitness.Int(0).Best(), fitness.Inf)
	}
}
