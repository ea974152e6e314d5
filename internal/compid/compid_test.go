package compid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack_RoundTrip(t *testing.T) {
	// Every group against a spread of children, plus the extremes.
	children := []uint16{0, 1, 2, 999, 1000, 0x7FFF, 0x8000, 0xFFFE, 0xFFFF}
	for g := 0; g <= 0xFFFF; g++ {
		for _, c := range children {
			group, child := Unpack(Pack(uint16(g), c))
			if group != uint16(g) || child != c {
				t.Fatalf("round trip of (%d, %d) gave (%d, %d)", g, c, group, child)
			}
		}
	}
}

func TestPack(t *testing.T) {
	testCases := []struct {
		name     string
		group    uint16
		child    uint16
		expected int32
	}{
		{name: "zero", expected: 0},
		{name: "group only", group: 1, expected: 65536},
		{name: "child only", child: 42, expected: 42},
		{name: "both", group: 548, child: 12, expected: 548<<16 | 12},
		{name: "high group is negative", group: 0xFFFF, child: 0xFFFF, expected: -1},
		{name: "sign bit", group: 0x8000, child: 0, expected: -2147483648},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Pack(tc.group, tc.child))
		})
	}
}

func TestUnpack_NoSignExtension(t *testing.T) {
	group, child := Unpack(-1)
	assert.Equal(t, uint16(0xFFFF), group)
	assert.Equal(t, uint16(0xFFFF), child)

	group, child = Unpack(-2147483647)
	assert.Equal(t, uint16(0x8000), group)
	assert.Equal(t, uint16(1), child)
}

func TestPair_String(t *testing.T) {
	p := PairOf(Pack(162, 33))
	assert.Equal(t, "162:33", p.String())
	assert.Equal(t, Pack(162, 33), p.ID())

	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "162:33", string(text))
}

func TestParsePair(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
		expected  Pair
	}{
		{name: "colon form", input: "162:33", expected: Pair{Group: 162, Child: 33}},
		{name: "whitespace", input: " 1:2 ", expected: Pair{Group: 1, Child: 2}},
		{name: "packed integer", input: "10616865", expected: Pair{Group: 162, Child: 33}},
		{name: "negative packed integer", input: "-1", expected: Pair{Group: 0xFFFF, Child: 0xFFFF}},
		{name: "error - group overflow", input: "65536:0", expectErr: true},
		{name: "error - child not a number", input: "1:x", expectErr: true},
		{name: "error - out of int32 range", input: "4294967296", expectErr: true},
		{name: "error - empty", input: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePair(tc.input)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrInvalidPair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}
