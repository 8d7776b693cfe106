package protparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesCoverAlphabet(t *testing.T) {
	require.Len(t, residueMass, 20)
	require.Len(t, hydropathy, 20)
	require.Len(t, elements, 20)

	for i := 0; i < len(Alphabet); i++ {
		code := Alphabet[i]
		_, ok := Mass(code)
		assert.True(t, ok, "mass %c", code)
		_, ok = Hydropathy(code)
		assert.True(t, ok, "hydropathy %c", code)
		_, ok = Elements(code)
		assert.True(t, ok, "elements %c", code)
	}

	_, ok := Mass('X')
	assert.False(t, ok)
}

func TestDIWVComplete(t *testing.T) {
	total := 0
	for _, row := range diwv {
		total += len(row)
	}
	assert.Equal(t, 400, total)

	for i := 0; i < len(Alphabet); i++ {
		row, ok := diwv[Alphabet[i]]
		require.True(t, ok, "row %c", Alphabet[i])
		for j := 0; j < len(Alphabet); j++ {
			_, ok := row[Alphabet[j]]
			assert.True(t, ok, "pair %c%c", Alphabet[i], Alphabet[j])
		}
	}
}

func TestDIWVReferenceValues(t *testing.T) {
	tests := []struct {
		pair string
		want float64
	}{
		{"KK", 1.0},
		{"AC", 44.94},
		{"RR", 58.28},
		{"MH", 58.28},
		{"GG", 13.34},
		{"YR", -15.91},
		{"WA", -14.03},
		{"PE", 18.38},
		{"FY", 33.601},
		{"KQ", 24.64},
	}

	for _, tt := range tests {
		t.Run(tt.pair, func(t *testing.T) {
			assert.Equal(t, tt.want, DipeptideWeight(tt.pair[0], tt.pair[1]))
		})
	}
}

func TestDipeptideWeightMissingPair(t *testing.T) {
	assert.Equal(t, 0.0, DipeptideWeight('X', 'A'))
	assert.Equal(t, 0.0, DipeptideWeight('A', 'B'))
}
