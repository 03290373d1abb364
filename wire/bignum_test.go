package wire

import (
	"bytes"
	"math/big"
	"testing"

	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

func TestMarshalBignum(t *testing.T) {
	tests := []struct {
		value    int64
		expected []byte
	}{
		{0, []byte{}},
		{1, []byte{1}},
		{127, []byte{0x7f}},
		// Top bit set: a zero byte keeps the value positive.
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xff}},
		{256, []byte{0x01, 0x00}},
		{65537, []byte{0x01, 0x00, 0x01}},
	}
	for _, tt := range tests {
		got, err := MarshalBignum(big.NewInt(tt.value))
		assert.NilError(t, err, "value %d", tt.value)
		assert.Check(t, cmp.DeepEqual(got, tt.expected), "value %d", tt.value)
	}
}

func TestMarshalBignumRejectsNegative(t *testing.T) {
	_, err := MarshalBignum(big.NewInt(-5))
	assert.Equal(t, err, ErrNegativeBignum)
}

func TestParseBignum(t *testing.T) {
	x, err := ParseBignum([]byte{0x01, 0x00, 0x01})
	assert.NilError(t, err)
	assert.Equal(t, x.Int64(), int64(65537))

	// Leading zero is accepted only when it protects a set top bit.
	x, err = ParseBignum([]byte{0x00, 0x80})
	assert.NilError(t, err)
	assert.Equal(t, x.Int64(), int64(128))
}

func TestParseBignumRejections(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", []byte{}, ErrEmptyBignum},
		{"negative", []byte{0x80, 0x01}, ErrNegativeBignum},
		{"redundant zero", []byte{0x00, 0x01}, ErrNonMinimalBignum},
		{"lone zero", []byte{0x00}, ErrNonMinimalBignum},
	}
	for _, tt := range tests {
		_, err := ParseBignum(tt.in)
		assert.Equal(t, err, tt.want, tt.name)
	}
}

func TestBignumRoundTrip(t *testing.T) {
	x, ok := new(big.Int).SetString("e1428e726fdc7af32a266d5d23451a2ab4853c10e8027ecf4baf39e019e498b2", 16)
	assert.Assert(t, ok)

	buf := bytes.Buffer{}
	_, err := WriteBignum(x, &buf)
	assert.NilError(t, err)

	// 32 magnitude bytes plus the sign-protecting zero.
	assert.Check(t, cmp.DeepEqual(buf.Bytes()[:5], []byte{0, 0, 0, 33, 0}))

	got, _, err := ReadBignum(&buf)
	assert.NilError(t, err)
	assert.Equal(t, got.Cmp(x), 0)
}
