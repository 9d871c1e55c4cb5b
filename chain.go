package fourier

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/arithm"
)

// Limb is one epicycle of a reconstruction chain: the circle center it
// rotates around, its rotating tip, and the circle radius. A renderer draws
// the circle at Center and a spoke from Center to Tip.
type Limb struct {
	Center arithm.Pair
	Tip    arithm.Pair
	Radius float64
}

// Chain evaluates the epicycle chain at time t. Starting from center, each
// coefficient in list order contributes one rotating vector with
//
//	radius = |c|,  angle = 2π·n·t + arg(c)
//
// and the running position advances to the vector's tip. The tip of the last
// limb is the composite point. Pure and stateless: identical arguments yield
// an identical chain.
//
// Coefficient list order is a visual choice. Filtered lists come ordered by
// descending magnitude, so the dominant harmonic forms the innermost circle.
func Chain(coeffs []Coefficient, center arithm.Pair, t float64) []Limb {
	limbs := make([]Limb, len(coeffs))
	pos := center
	for i, coeff := range coeffs {
		radius := coeff.Mag()
		angle := 2*math.Pi*float64(coeff.Freq)*t + cmplx.Phase(coeff.C.C())
		tip := pos + arithm.P(radius*math.Cos(angle), radius*math.Sin(angle))
		limbs[i] = Limb{Center: pos, Tip: tip, Radius: radius}
		pos = tip
	}
	return limbs
}

// Tip returns just the composite point of the chain at time t, without
// materializing the limbs. An empty coefficient list yields center.
func Tip(coeffs []Coefficient, center arithm.Pair, t float64) arithm.Pair {
	pos := center
	for _, coeff := range coeffs {
		radius := coeff.Mag()
		angle := 2*math.Pi*float64(coeff.Freq)*t + cmplx.Phase(coeff.C.C())
		pos += arithm.P(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return pos
}
