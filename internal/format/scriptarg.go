package format

import (
	"github.com/vk/defpeek/internal/compid"
	"github.com/vk/defpeek/internal/recordstore"
)

// pairLimit bounds both halves of an integer FormatScriptArg treats as a pair.
const pairLimit = 1000

// FormatScriptArg guesses what an untyped script argument means.
//
//   - Arrays are formatted element by element.
//   - An exact script event sentinel becomes "^NAME".
//   - An int32 with a non-zero upper half whose group and child are both
//     below 1000 is assumed to be a packed component and becomes a compid.Pair.
//   - Anything else is returned unchanged.
//
// This is a heuristic: a plain number such as 65537 is indistinguishable from
// the pair 1:1 and is reported as the pair.
func FormatScriptArg(v any) any {
	if a, ok := v.([]any); ok {
		out := make([]any, len(a))
		for i, e := range a {
			out[i] = FormatScriptArg(e)
		}
		return out
	}

	n, ok := recordstore.AsInt(v)
	if !ok {
		return v
	}
	if e, ok := LookupScriptEvent(n); ok {
		return e.String()
	}
	if LooksLikePair(n) {
		return compid.PairOf(int32(n))
	}
	return v
}

// LooksLikePair is the pair test FormatScriptArg applies to integers.
func LooksLikePair(n int64) bool {
	if n != int64(int32(n)) || n&0xFFFF == n {
		return false
	}
	p := compid.PairOf(int32(n))
	return p.Group < pairLimit && p.Child < pairLimit
}
