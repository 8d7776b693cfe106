// Package protparam computes ProtParam-style physicochemical parameters
// (mass, pI, instability, aliphatic index, GRAVY, extinction coefficients,
// elemental formula) from a protein sequence. Every function is pure and
// safe for concurrent use.
package protparam

// Alphabet lists the 20 standard one-letter residue codes.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// Water lost per peptide bond. Kept at 18.015 to match ProtParam output.
const WaterMass = 18.015

// Average masses of the free amino acids (Da).
var residueMass = map[byte]float64{
	'A': 89.0932,
	'C': 121.1582,
	'D': 133.1027,
	'E': 147.1293,
	'F': 165.1891,
	'G': 75.0666,
	'H': 155.1546,
	'I': 131.1729,
	'K': 146.1876,
	'L': 131.1729,
	'M': 149.2113,
	'N': 132.1179,
	'P': 115.1305,
	'Q': 146.1445,
	'R': 174.2011,
	'S': 105.0926,
	'T': 119.1192,
	'V': 117.1463,
	'W': 204.2252,
	'Y': 181.1885,
}

// Kyte-Doolittle hydropathy.
var hydropathy = map[byte]float64{
	'A': 1.8,
	'C': 2.5,
	'D': -3.5,
	'E': -3.5,
	'F': 2.8,
	'G': -0.4,
	'H': -3.2,
	'I': 4.5,
	'K': -3.9,
	'L': 3.8,
	'M': 1.9,
	'N': -3.5,
	'P': -1.6,
	'Q': -3.5,
	'R': -4.5,
	'S': -0.8,
	'T': -0.7,
	'V': 4.2,
	'W': -0.9,
	'Y': -1.3,
}

// AtomCounts holds an elemental composition.
type AtomCounts struct {
	C int `json:"C" yaml:"C"`
	H int `json:"H" yaml:"H"`
	N int `json:"N" yaml:"N"`
	O int `json:"O" yaml:"O"`
	S int `json:"S" yaml:"S"`
}

// Elemental composition of each free amino acid.
var elements = map[byte]AtomCounts{
	'A': {C: 3, H: 7, N: 1, O: 2},
	'C': {C: 3, H: 7, N: 1, O: 2, S: 1},
	'D': {C: 4, H: 7, N: 1, O: 4},
	'E': {C: 5, H: 9, N: 1, O: 4},
	'F': {C: 9, H: 11, N: 1, O: 2},
	'G': {C: 2, H: 5, N: 1, O: 2},
	'H': {C: 6, H: 9, N: 3, O: 2},
	'I': {C: 6, H: 13, N: 1, O: 2},
	'K': {C: 6, H: 14, N: 2, O: 2},
	'L': {C: 6, H: 13, N: 1, O: 2},
	'M': {C: 5, H: 11, N: 1, O: 2, S: 1},
	'N': {C: 4, H: 8, N: 2, O: 3},
	'P': {C: 5, H: 9, N: 1, O: 2},
	'Q': {C: 5, H: 10, N: 2, O: 3},
	'R': {C: 6, H: 14, N: 4, O: 2},
	'S': {C: 3, H: 7, N: 1, O: 3},
	'T': {C: 4, H: 9, N: 1, O: 3},
	'V': {C: 5, H: 11, N: 1, O: 2},
	'W': {C: 11, H: 12, N: 2, O: 2},
	'Y': {C: 9, H: 11, N: 1, O: 3},
}

// Dissociation constants used by NetCharge.
const (
	PKaNTerm = 9.69
	PKaCTerm = 2.34
)

type ionizable struct {
	code string
	pKa  float64
}

// Side chains are kept in slices so charge sums always add up in the same order.
var positivePKa = []ionizable{
	{"K", 10.54},
	{"R", 12.48},
	{"H", 6.00},
}

var negativePKa = []ionizable{
	{"D", 3.86},
	{"E", 4.25},
	{"C", 8.33},
	{"Y", 10.07},
}

// IsStandard reports whether b is one of the 20 standard residue codes.
func IsStandard(b byte) bool {
	_, ok := residueMass[b]
	return ok
}

// Mass returns the free amino acid mass for code, and false for an unknown code.
func Mass(code byte) (float64, bool) {
	m, ok := residueMass[code]
	return m, ok
}

// Hydropathy returns the Kyte-Doolittle score for code.
func Hydropathy(code byte) (float64, bool) {
	h, ok := hydropathy[code]
	return h, ok
}

// Elements returns the elemental composition of the free amino acid.
func Elements(code byte) (AtomCounts, bool) {
	a, ok := elements[code]
	return a, ok
}
