// Package naming turns display names into symbolic constant names.
package naming

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vk/defpeek/internal/recordstore"
)

// Null is returned for names that leave nothing usable.
const Null = "NULL"

var upper = cases.Upper(language.Und)

// Constify upper-cases name, turns spaces into underscores and strips every
// character outside [A-Z0-9_]. A leading digit gets an underscore prefix.
func Constify(name string) string {
	if name == "" {
		return Null
	}
	s := strings.ReplaceAll(upper.String(name), " ", "_")

	var b strings.Builder
	b.Grow(len(s) + 1)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
			b.WriteByte(c)
		}
	}
	out := b.String()
	if out == "" {
		return Null
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// ConstifyArray maps each record's id to the constified form of its name.
// Records are visited in order; a name that is already taken gets "_<id>"
// appended, so the mapping is collision-free. Nil slots and records without
// an integer id are skipped.
func ConstifyArray(records []recordstore.Record) map[int64]string {
	used := make(map[string]bool, len(records))
	names := make(map[int64]string, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		id, ok := r.ID()
		if !ok {
			continue
		}
		p := Constify(r.Name())
		if used[p] {
			p = p + "_" + strconv.FormatInt(id, 10)
		}
		used[p] = true
		names[id] = p
	}
	return names
}
