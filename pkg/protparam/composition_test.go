package protparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountResiduesIsDense(t *testing.T) {
	counts := CountResidues("KKKKK")
	require.Len(t, counts, 20)
	assert.Equal(t, 5, counts["K"])
	assert.Equal(t, 0, counts["W"])
	assert.Equal(t, 5, counts.Total())
}

func TestPercentages(t *testing.T) {
	counts := CountResidues("AAKG")
	pct, err := Percentages(counts, 4)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, pct["A"], 1e-9)
	assert.InDelta(t, 25.0, pct["K"], 1e-9)
	assert.InDelta(t, 0.0, pct["W"], 1e-9)

	_, err = Percentages(counts, 0)
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestAtomicComposition(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		want    AtomCounts
		formula string
	}{
		{"Glycine", "G", AtomCounts{C: 2, H: 5, N: 1, O: 2}, "C2H5NO2"},
		{"Diglycine", "GG", AtomCounts{C: 4, H: 8, N: 2, O: 3}, "C4H8N2O3"},
		{"Cysteine", "C", AtomCounts{C: 3, H: 7, N: 1, O: 2, S: 1}, "C3H7NO2S"},
		{"InsulinA", "GIVEQCCTSICSLYQLENYCN", AtomCounts{C: 99, H: 155, N: 25, O: 35, S: 4}, "C99H155N25O35S4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AtomicComposition(CountResidues(tt.seq))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.formula, got.Formula())
		})
	}
}

func TestAromaticity(t *testing.T) {
	assert.InDelta(t, 0.5, Aromaticity(CountResidues("FWYA"+"AA"), 6), 1e-9)
	assert.InDelta(t, 1.0, Aromaticity(CountResidues("W"), 1), 1e-9)
	assert.Equal(t, 0.0, Aromaticity(CountResidues(""), 0))
}
