package protparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetChargeMonotonic(t *testing.T) {
	for _, seq := range []string{"G", "KKKKK", "DDDDE", "GIVEQCCTSICSLYQLENYCN", Alphabet} {
		counts := CountResidues(seq)
		prev := NetCharge(0, counts)
		for pH := 0.25; pH <= 14; pH += 0.25 {
			cur := NetCharge(pH, counts)
			assert.LessOrEqual(t, cur, prev, "%s at pH %.2f", seq, pH)
			prev = cur
		}
	}
}

func TestNetChargeLimits(t *testing.T) {
	counts := CountResidues("KKKKK")
	// All five Lys plus the N-terminus protonated, C-terminus neutral.
	assert.InDelta(t, 6.0, NetCharge(0, counts), 0.01)
	assert.Less(t, NetCharge(14, counts), 0.0)
}

func TestIsoelectricPoint(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"Glycine", "G", 6.125},
		{"Polylysine", "KKKKK", 11.1597},
		{"Acidic", "DDDDE", 2.7156},
		{"InsulinA", "GIVEQCCTSICSLYQLENYCN", 3.1274},
		{"Basic", "MKTAYIAKQRQISFVKSHFSRQ", 11.645},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := CountResidues(tt.seq)
			pI := IsoelectricPoint(counts)
			assert.InDelta(t, tt.want, pI, 0.01)
			assert.InDelta(t, 0.0, NetCharge(pI, counts), 0.05)
		})
	}
}

func TestIsoelectricPointWithoutIonizableSideChains(t *testing.T) {
	for _, seq := range []string{"G", "AAAA", "LIVAGP"} {
		pI := IsoelectricPoint(CountResidues(seq))
		assert.Greater(t, pI, PKaCTerm, seq)
		assert.Less(t, pI, PKaNTerm, seq)
	}
}

func TestIsoelectricPointStrongBase(t *testing.T) {
	assert.Greater(t, IsoelectricPoint(CountResidues("KKKKK")), 9.5)
}
