package protparam

// Stage is the lifecycle of a single analysis.
type Stage string

const (
	StageIdle      Stage = "idle"
	StageAnalyzing Stage = "analyzing"
	StageDone      Stage = "done"
	StageFailed    Stage = "failed"
)

// Result is the full set of parameters computed for one sequence.
type Result struct {
	Sequence         string             `json:"sequence" yaml:"sequence"`
	Length           int                `json:"length" yaml:"length"`
	MolecularWeight  float64            `json:"molecular_weight" yaml:"molecular_weight"`
	IsoelectricPoint float64            `json:"isoelectric_point" yaml:"isoelectric_point"`
	Composition      Counts             `json:"amino_acid_composition" yaml:"amino_acid_composition"`
	Percent          map[string]float64 `json:"amino_acid_percent" yaml:"amino_acid_percent"`
	Atoms            AtomCounts         `json:"atomic_composition" yaml:"atomic_composition"`
	Formula          string             `json:"formula" yaml:"formula"`
	TotalAtoms       int                `json:"total_atoms" yaml:"total_atoms"`
	Extinction       Extinction         `json:"extinction_coefficient" yaml:"extinction_coefficient"`
	Absorbance       Absorbance         `json:"absorbance_0_1_percent" yaml:"absorbance_0_1_percent"`
	InstabilityIndex float64            `json:"instability_index" yaml:"instability_index"`
	Stability        Stability          `json:"stability" yaml:"stability"`
	AliphaticIndex   float64            `json:"aliphatic_index" yaml:"aliphatic_index"`
	Gravy            float64            `json:"gravy" yaml:"gravy"`
	Aromaticity      float64            `json:"aromaticity" yaml:"aromaticity"`
	NegativeResidues int                `json:"negative_residues" yaml:"negative_residues"`
	PositiveResidues int                `json:"positive_residues" yaml:"positive_residues"`
}

// Analyze cleans raw and computes every parameter for it. An input that
// does not clean to a valid sequence yields an *InvalidSequenceError and
// no result.
func Analyze(raw string) (*Result, error) {
	seq, err := Clean(raw)
	if err != nil {
		return nil, err
	}
	return analyzeClean(seq)
}

func analyzeClean(seq string) (*Result, error) {
	length := len(seq)
	counts := CountResidues(seq)

	pct, err := Percentages(counts, length)
	if err != nil {
		return nil, err
	}

	mw := MolecularWeight(seq)
	ext := ExtinctionCoefficient(counts)
	atoms := AtomicComposition(counts)
	instability := InstabilityIndex(seq)

	return &Result{
		Sequence:         seq,
		Length:           length,
		MolecularWeight:  mw,
		IsoelectricPoint: IsoelectricPoint(counts),
		Composition:      counts,
		Percent:          pct,
		Atoms:            atoms,
		Formula:          atoms.Formula(),
		TotalAtoms:       atoms.Total(),
		Extinction:       ext,
		Absorbance:       AbsorbanceOf(ext, mw),
		InstabilityIndex: instability,
		Stability:        Classify(instability),
		AliphaticIndex:   AliphaticIndex(counts, length),
		Gravy:            Gravy(seq),
		Aromaticity:      Aromaticity(counts, length),
		NegativeResidues: counts["D"] + counts["E"],
		PositiveResidues: counts["R"] + counts["K"],
	}, nil
}
