package protparam

// Molar absorptivities at 280 nm (M-1 cm-1).
const (
	extTyr     = 1490
	extTrp     = 5500
	extCystine = 125
)

// Extinction holds the UV280 molar extinction coefficients.
// Reduced assumes all Cys are free; Oxidized assumes every Cys pair forms a cystine.
type Extinction struct {
	Reduced  int `json:"reduced" yaml:"reduced"`
	Oxidized int `json:"oxidized" yaml:"oxidized"`
}

// MolecularWeight returns the average mass of the chain in Da.
func MolecularWeight(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	var mw float64
	for i := 0; i < len(seq); i++ {
		mw += residueMass[seq[i]]
	}
	return mw - float64(len(seq)-1)*WaterMass
}

// ExtinctionCoefficient derives the 280 nm coefficients from Tyr, Trp and Cys counts.
func ExtinctionCoefficient(counts Counts) Extinction {
	reduced := counts["Y"]*extTyr + counts["W"]*extTrp
	return Extinction{
		Reduced:  reduced,
		Oxidized: reduced + (counts["C"]/2)*extCystine,
	}
}

// Absorbance of a 1 g/l solution (Abs 0.1%).
type Absorbance struct {
	Reduced  float64 `json:"reduced" yaml:"reduced"`
	Oxidized float64 `json:"oxidized" yaml:"oxidized"`
}

// AbsorbanceOf divides the extinction coefficients by the molecular weight.
func AbsorbanceOf(ext Extinction, mw float64) Absorbance {
	if mw <= 0 {
		return Absorbance{}
	}
	return Absorbance{
		Reduced:  float64(ext.Reduced) / mw,
		Oxidized: float64(ext.Oxidized) / mw,
	}
}
