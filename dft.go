package fourier

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fourier'
func tracer() tracing.Trace {
	return tracing.Select("fourier")
}

// DefaultThreshold is the coefficient magnitude below which Filter discards
// a coefficient, in centered canvas units.
const DefaultThreshold = 1.0

// Coefficient is one term of a discrete Fourier transform: a signed
// frequency index together with its complex amplitude.
type Coefficient struct {
	Freq int
	C    arithm.Pair
}

// Mag returns the magnitude |c| of the coefficient's amplitude.
func (c Coefficient) Mag() float64 {
	return cmplx.Abs(c.C.C())
}

// Centered maps raw canvas positions to complex samples by subtracting a
// fixed center point. Pure; the input slice is unchanged.
func Centered(points []arithm.Pair, center arithm.Pair) []arithm.Pair {
	samples := make([]arithm.Pair, len(points))
	for i, p := range points {
		samples[i] = p - center
	}
	return samples
}

// Spectrum is the raw, unfiltered output of a transform: one coefficient
// per frequency index, kept in index order.
type Spectrum struct {
	n      int          // number of input samples
	coeffs *treemap.Map // frequency index -> arithm.Pair
}

// Transform computes the direct discrete Fourier transform of N complex
// samples. For each frequency index n over the N consecutive integers
// centered at zero (−⌈N/2⌉ … ⌊N/2⌋−1),
//
//	c(n) = (1/N) · Σ_k sample(k) · exp(−2πi·n·k/N)
//
// with k ascending 0…N−1. The summation order is fixed to keep results
// reproducible across runs. Deliberately O(N²); see the package docs.
//
// Callers must guarantee N ≥ 2.
func Transform(samples []arithm.Pair) *Spectrum {
	N := len(samples)
	spectrum := &Spectrum{
		n:      N,
		coeffs: treemap.NewWithIntComparator(),
	}
	lo := -((N + 1) / 2)
	for n := lo; n < lo+N; n++ {
		var c complex128
		for k := 0; k < N; k++ {
			arg := -2 * math.Pi * float64(n) * float64(k) / float64(N)
			c += samples[k].C() * cmplx.Exp(complex(0, arg))
		}
		c /= complex(float64(N), 0)
		spectrum.coeffs.Put(n, arithm.Pair(c))
	}
	tracer().Debugf("transformed %d samples into %d raw coefficients", N, N)
	return spectrum
}

// SampleCount returns the number of samples the spectrum was computed from.
func (s *Spectrum) SampleCount() int {
	return s.n
}

// At returns the raw coefficient amplitude for frequency index n.
func (s *Spectrum) At(n int) (arithm.Pair, bool) {
	if v, ok := s.coeffs.Get(n); ok {
		return v.(arithm.Pair), true
	}
	return arithm.Origin, false
}

// Coefficients returns all raw (index, amplitude) pairs in ascending
// frequency order.
func (s *Spectrum) Coefficients() []Coefficient {
	coeffs := make([]Coefficient, 0, s.coeffs.Size())
	it := s.coeffs.Iterator()
	for it.Next() {
		coeffs = append(coeffs, Coefficient{
			Freq: it.Key().(int),
			C:    it.Value().(arithm.Pair),
		})
	}
	return coeffs
}

// Filter returns the spectrum's coefficients above the given magnitude
// threshold, ordered for animation (see FilterCoefficients).
func (s *Spectrum) Filter(threshold float64) []Coefficient {
	retained := FilterCoefficients(s.Coefficients(), threshold)
	tracer().Debugf("retained %d of %d coefficients above %g", len(retained), s.n, threshold)
	return retained
}

// FilterCoefficients retains coefficients with magnitude strictly above
// threshold and sorts them by descending magnitude. Coefficients of exactly
// equal magnitude keep ascending frequency order. Idempotent: filtering an
// already filtered and sorted list with the same threshold returns an
// identical list.
func FilterCoefficients(coeffs []Coefficient, threshold float64) []Coefficient {
	retained := make([]Coefficient, 0, len(coeffs))
	for _, c := range coeffs {
		if c.Mag() > threshold {
			retained = append(retained, c)
		}
	}
	sort.SliceStable(retained, func(i, j int) bool {
		mi, mj := retained[i].Mag(), retained[j].Mag()
		if mi == mj {
			return retained[i].Freq < retained[j].Freq
		}
		return mi > mj
	})
	return retained
}
