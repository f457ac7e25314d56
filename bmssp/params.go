package bmssp

import "math"

// params holds the t/k/p_limit/k_steps quadruple derived from the vertex
// count n for a single BMSSP call. t controls how D's capacity hint scales
// across recursion levels; k controls Basecase's settled-set cutoff and
// FindPivots' exploration depth; p_limit caps the pivot set size; k_steps
// is simply max(1, k) — kept distinct from k because the spec names them
// separately even though they always coincide today.
type params struct {
	t      int
	k      int
	pLimit int
	kSteps int
}

// deriveParams computes t and k from n exactly as specified: for n <= 2 the
// formulas degenerate (ln of a near-trivial graph is not a meaningful
// scale), so t and k fall back to fixed small constants. Otherwise both are
// rounded powers of ln(max(3, n)), matching the spec's parameter-derivation
// note that ports must reproduce these roundings exactly for cross-
// implementation test parity.
func deriveParams(n int) params {
	var t, k int
	if n <= 2 {
		t, k = 1, 2
	} else {
		lnN := math.Log(math.Max(3, float64(n)))
		t = maxInt(1, int(math.Round(math.Pow(lnN, 2.0/3.0))))
		k = maxInt(2, int(math.Round(math.Pow(lnN, 1.0/3.0))))
	}

	shift := t
	if shift > 10 {
		shift = 10
	}
	pLimit := maxInt(1, 1<<shift)
	kSteps := maxInt(1, k)

	return params{t: t, k: k, pLimit: pLimit, kSteps: kSteps}
}

// deriveLevel computes the recursion depth l the driver seeds BMSSP with,
// from the same t used by deriveParams.
func deriveLevel(n int, t int) int {
	if n <= 2 {
		return 1
	}

	lnN := math.Log(math.Max(3, float64(n)))

	return maxInt(1, int(math.Round(lnN/float64(t))))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
