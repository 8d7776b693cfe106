package protparam

// InstabilityThreshold separates stable from unstable proteins (Guruprasad 1990).
const InstabilityThreshold = 40.0

// Stability is the in-vitro stability class derived from the instability index.
type Stability string

const (
	Stable   Stability = "stable"
	Unstable Stability = "unstable"
)

// InstabilityIndex sums the dipeptide weights of every adjacent pair and
// scales by 10/length.
func InstabilityIndex(seq string) float64 {
	if len(seq) < 2 {
		return 0
	}
	var score float64
	for i := 0; i < len(seq)-1; i++ {
		score += DipeptideWeight(seq[i], seq[i+1])
	}
	return 10 / float64(len(seq)) * score
}

// Classify maps an instability index onto a Stability.
func Classify(index float64) Stability {
	if index > InstabilityThreshold {
		return Unstable
	}
	return Stable
}

// AliphaticIndex is the relative volume of Ala, Val, Ile and Leu side chains.
func AliphaticIndex(counts Counts, length int) float64 {
	if length <= 0 {
		return 0
	}
	n := float64(length)
	a := 100 * float64(counts["A"]) / n
	v := 100 * float64(counts["V"]) / n
	il := 100 * float64(counts["I"]+counts["L"]) / n
	return a + 2.9*v + 3.9*il
}

// Gravy is the mean Kyte-Doolittle hydropathy over seq.
func Gravy(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < len(seq); i++ {
		sum += hydropathy[seq[i]]
	}
	return sum / float64(len(seq))
}
