package compid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPair is returned when a textual "group:child" pair cannot be parsed.
var ErrInvalidPair = errors.New("invalid composite identifier")

// Pair is the unpacked form of a composite identifier.
type Pair struct {
	Group uint16
	Child uint16
}

// Pack returns (group << 16) | child using two's-complement 32-bit arithmetic.
func Pack(group, child uint16) int32 {
	return int32(uint32(group)<<16 | uint32(child))
}

// Unpack splits id into its group and child halves. The group is taken with an
// unsigned shift so negative ids never sign-extend into it.
func Unpack(id int32) (group, child uint16) {
	u := uint32(id)
	return uint16(u >> 16), uint16(u & 0xFFFF)
}

// PairOf is Unpack returning a Pair.
func PairOf(id int32) Pair {
	g, c := Unpack(id)
	return Pair{Group: g, Child: c}
}

// ID packs the pair back into a composite identifier.
func (p Pair) ID() int32 {
	return Pack(p.Group, p.Child)
}

// String renders the pair as "group:child".
func (p Pair) String() string {
	return strconv.Itoa(int(p.Group)) + ":" + strconv.Itoa(int(p.Child))
}

// MarshalText keeps pairs readable when they end up inside JSON output.
func (p Pair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePair accepts either "group:child" or a plain packed integer.
func ParsePair(s string) (Pair, error) {
	s = strings.TrimSpace(s)
	g, c, found := strings.Cut(s, ":")
	if !found {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v != int64(int32(v)) {
			return Pair{}, fmt.Errorf("%w: %q", ErrInvalidPair, s)
		}
		return PairOf(int32(v)), nil
	}
	group, err := strconv.ParseUint(g, 10, 16)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: group %q", ErrInvalidPair, g)
	}
	child, err := strconv.ParseUint(c, 10, 16)
	if err != nil {
		return Pair{}, fmt.Errorf("%w: child %q", ErrInvalidPair, c)
	}
	return Pair{Group: uint16(group), Child: uint16(child)}, nil
}
