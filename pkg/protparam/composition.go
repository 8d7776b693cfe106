package protparam

import (
	"errors"
	"strconv"
	"strings"
)

// ErrZeroLength is returned when a per-length quantity is asked for an empty chain.
var ErrZeroLength = errors.New("sequence length is zero")

// Counts maps each one-letter code to its number of occurrences.
// Counts built by CountResidues always carry all 20 codes.
type Counts map[string]int

// CountResidues counts every standard residue in seq, including absent ones.
func CountResidues(seq string) Counts {
	counts := make(Counts, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		counts[Alphabet[i:i+1]] = 0
	}
	for i := 0; i < len(seq); i++ {
		if IsStandard(seq[i]) {
			counts[seq[i:i+1]]++
		}
	}
	return counts
}

// Total is the number of residues counted.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Percentages returns 100*count/length for every code in counts.
func Percentages(counts Counts, length int) (map[string]float64, error) {
	if length <= 0 {
		return nil, ErrZeroLength
	}
	pct := make(map[string]float64, len(counts))
	for code, n := range counts {
		pct[code] = 100 * float64(n) / float64(length)
	}
	return pct, nil
}

// AtomicComposition sums the elements of every residue and removes one
// water per peptide bond.
func AtomicComposition(counts Counts) AtomCounts {
	var atoms AtomCounts
	n := 0
	for code, k := range counts {
		if k == 0 || len(code) != 1 {
			continue
		}
		e, ok := elements[code[0]]
		if !ok {
			continue
		}
		atoms.C += e.C * k
		atoms.H += e.H * k
		atoms.N += e.N * k
		atoms.O += e.O * k
		atoms.S += e.S * k
		n += k
	}
	if n > 1 {
		atoms.H -= 2 * (n - 1)
		atoms.O -= n - 1
	}
	return atoms
}

// Total returns the number of atoms.
func (a AtomCounts) Total() int {
	return a.C + a.H + a.N + a.O + a.S
}

// Formula renders the composition in Hill order, e.g. C2H5NO2.
func (a AtomCounts) Formula() string {
	var b strings.Builder
	for _, el := range []struct {
		sym string
		n   int
	}{{"C", a.C}, {"H", a.H}, {"N", a.N}, {"O", a.O}, {"S", a.S}} {
		if el.n == 0 {
			continue
		}
		b.WriteString(el.sym)
		if el.n > 1 {
			b.WriteString(strconv.Itoa(el.n))
		}
	}
	return b.String()
}

// Aromaticity is the fraction of Phe, Trp and Tyr residues.
func Aromaticity(counts Counts, length int) float64 {
	if length <= 0 {
		return 0
	}
	return float64(counts["F"]+counts["W"]+counts["Y"]) / float64(length)
}
