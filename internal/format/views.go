package format

import (
	"context"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/vk/defpeek/internal/compid"
	"github.com/vk/defpeek/internal/enums"
	"github.com/vk/defpeek/internal/recordstore"
)

// ListenerSuffix marks widget fields that hold script listener arguments.
const ListenerSuffix = "Listener"

// RenderEnum returns the display form of an enum: a leading keyType to valType
// entry, then every key and value formatted by its declared type, in
// declaration order.
func (f *Formatter) RenderEnum(ctx context.Context, m *enums.Materialized) (*orderedmap.OrderedMap, error) {
	keyType, valType := ParseType(m.KeyType), ParseType(m.ValType)

	out := orderedmap.New()
	out.Set(m.KeyType, m.ValType)
	for _, e := range m.Entries {
		k, err := f.Format(ctx, keyType, e.Key)
		if err != nil {
			return nil, err
		}
		v, err := f.Format(ctx, valType, e.Value)
		if err != nil {
			return nil, err
		}
		out.Set(k, v)
	}
	return out, nil
}

// RenderWidget returns the display form of a widget record without touching
// the record. id and parentId become "group:child"; each element of a
// "...Listener" array goes through FormatScriptArg with pairs rendered as
// "group:child" and nested arrays as "first:second". Other fields are copied as they are. Keys come out sorted.
func RenderWidget(rec recordstore.Record) *orderedmap.OrderedMap {
	out := orderedmap.New()
	for _, k := range rec.Keys() {
		v := rec[k]
		switch {
		case k == "id" || k == "parentId":
			if n, ok := recordstore.AsInt(v); ok {
				out.Set(k, compid.PairOf(int32(n)).String())
			} else {
				out.Set(k, v)
			}
		case strings.HasSuffix(k, ListenerSuffix):
			args, ok := v.([]any)
			if !ok {
				out.Set(k, v)
				continue
			}
			rendered := make([]any, len(args))
			for i, a := range args {
				rendered[i] = listenerArg(FormatScriptArg(a))
			}
			out.Set(k, rendered)
		default:
			out.Set(k, v)
		}
	}
	return out
}

func listenerArg(v any) any {
	switch t := v.(type) {
	case compid.Pair:
		return t.String()
	case []any:
		return listenerPart(t, 0) + ":" + listenerPart(t, 1)
	default:
		return v
	}
}

func listenerPart(a []any, i int) string {
	if i >= len(a) {
		return Stringify(nil)
	}
	if p, ok := a[i].(compid.Pair); ok {
		return p.String()
	}
	return Stringify(a[i])
}
