package protparam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"LowercaseDigitsSpaces", "mkt123 ayi", "MKTAYI"},
		{"TabsAndNewlines", "MK\tT\nAY\r\nI", "MKTAYI"},
		{"KeepsPunctuation", "mk-t*", "MK-T*"},
		{"AlreadyClean", "GIVEQCCTSICSLYQLENYCN", "GIVEQCCTSICSLYQLENYCN"},
		{"OnlyNoise", " 12 \n 3 ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, s := range []string{"ACDEFGHIKLMNPQRSTVWY", "mkt123 ayi", "x y z"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), s)
	}
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate(Alphabet))
	assert.True(t, Validate("G"))
	assert.False(t, Validate(""))
	for _, bad := range []string{"B", "Z", "X", "U", "O", "*", "MK-T", "mkt"} {
		assert.False(t, Validate(bad), bad)
	}
}

func TestClean(t *testing.T) {
	seq, err := Clean("mkt123 ayi")
	require.NoError(t, err)
	assert.Equal(t, "MKTAYI", seq)

	_, err = Clean("MKXAYI")
	require.Error(t, err)
	var invalid *InvalidSequenceError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 'X', invalid.Residue)
	assert.Equal(t, 3, invalid.Position)
	assert.Equal(t, "MKXAYI", invalid.Cleaned)
	assert.True(t, errors.Is(err, ErrInvalidSequence))
	assert.Contains(t, err.Error(), "position 3")

	_, err = Clean("   ")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "", invalid.Cleaned)
	assert.Contains(t, err.Error(), "empty")
}

func TestCleanReportsRunePosition(t *testing.T) {
	_, err := Clean("MKé")
	var invalid *InvalidSequenceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 'É', invalid.Residue)
	assert.Equal(t, 3, invalid.Position)
}
