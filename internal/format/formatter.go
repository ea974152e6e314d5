package format

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/defpeek/internal/compid"
	"github.com/vk/defpeek/internal/ctxlog"
	"github.com/vk/defpeek/internal/dataset"
	"github.com/vk/defpeek/internal/naming"
	"github.com/vk/defpeek/internal/recordstore"
)

// NameSource resolves reference ids to records. *dataset.Dataset satisfies it.
type NameSource interface {
	Collection(ctx context.Context, name string) (*recordstore.Collection, error)
}

// Formatter renders typed values. A nil NameSource renders every reference as
// its raw id.
type Formatter struct {
	names NameSource
}

// New creates a Formatter that resolves references through names.
func New(names NameSource) *Formatter {
	return &Formatter{names: names}
}

// Format renders raw as a value of type t. It fails only when a referenced
// collection cannot be loaded; unknown tags and values that do not fit the
// type fall back to the raw value's text.
func (f *Formatter) Format(ctx context.Context, t Type, raw any) (string, error) {
	switch t.Kind {
	case KindInteger, KindString, KindUnknown:
		return Stringify(raw), nil
	case KindBoolean:
		return formatBoolean(raw), nil
	case KindColour:
		v, ok := toInt(raw)
		if !ok {
			return Stringify(raw), nil
		}
		return strconv.FormatInt(v, 16), nil
	case KindComponent:
		v, ok := toInt(raw)
		if !ok {
			return Stringify(raw), nil
		}
		return compid.PairOf(int32(v)).String(), nil
	case KindCoordGrid:
		v, ok := toInt(raw)
		if !ok {
			return Stringify(raw), nil
		}
		return FormatCoordGrid(int32(v)), nil
	case KindObj, KindNamedObj:
		return f.formatNamed(ctx, dataset.Items, raw)
	case KindLoc:
		return f.formatNamed(ctx, dataset.Objs, raw)
	case KindNPC:
		return f.formatNamed(ctx, dataset.NPCs, raw)
	default:
		panic(fmt.Sprintf("format: unhandled kind %d for tag %q", t.Kind, t.Tag))
	}
}

// FormatTag is Format with the type given as its tag.
func (f *Formatter) FormatTag(ctx context.Context, tag string, raw any) (string, error) {
	return f.Format(ctx, ParseType(tag), raw)
}

func formatBoolean(raw any) string {
	v, ok := toInt(raw)
	switch {
	case ok && v == 0:
		return "false"
	case ok && v == 1:
		return "true"
	default:
		return Stringify(raw)
	}
}

// formatNamed renders "<CONSTIFIED_NAME>_<id>" for a record of collection, or
// the raw id when there is no such record.
func (f *Formatter) formatNamed(ctx context.Context, collection string, raw any) (string, error) {
	id, ok := toInt(raw)
	if !ok || f.names == nil {
		return Stringify(raw), nil
	}
	c, err := f.names.Collection(ctx, collection)
	if err != nil {
		return "", err
	}
	rec, ok := c.Get(id)
	if !ok {
		ctxlog.FromContext(ctx).Debug("Reference has no record, using raw id.", "collection", collection, "id", id)
		return Stringify(raw), nil
	}
	return naming.Constify(rec.Name()) + "_" + strconv.FormatInt(id, 10), nil
}

// Stringify renders a raw value the way it would read in the source data.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(v)
	}
}

// toInt accepts integer values and their decimal text, since enum keys and
// CLI arguments arrive as strings.
func toInt(v any) (int64, bool) {
	if i, ok := recordstore.AsInt(v); ok {
		return i, true
	}
	if s, ok := v.(string); ok {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return i, err == nil
	}
	return 0, false
}
