package protparam

import "math"

// Bisection limits for IsoelectricPoint.
const (
	pIMaxIterations = 100
	pITolerance     = 0.001
	pHMin           = 0.0
	pHMax           = 14.0
)

// NetCharge returns the net charge of a chain with the given residue counts at pH.
// It decreases monotonically as pH increases.
func NetCharge(pH float64, counts Counts) float64 {
	positive := 1 / (1 + math.Pow(10, pH-PKaNTerm))
	for _, g := range positivePKa {
		positive += float64(counts[g.code]) / (1 + math.Pow(10, pH-g.pKa))
	}

	negative := 1 / (1 + math.Pow(10, PKaCTerm-pH))
	for _, g := range negativePKa {
		negative += float64(counts[g.code]) / (1 + math.Pow(10, g.pKa-pH))
	}

	return positive - negative
}

// IsoelectricPoint bisects [0, 14] for the pH where NetCharge crosses zero.
func IsoelectricPoint(counts Counts) float64 {
	lo, hi := pHMin, pHMax
	pH := (lo + hi) / 2
	for i := 0; i < pIMaxIterations; i++ {
		pH = (lo + hi) / 2
		charge := NetCharge(pH, counts)
		if math.Abs(charge) < pITolerance {
			break
		}
		if charge > 0 {
			lo = pH
		} else {
			hi = pH
		}
	}
	return pH
}
