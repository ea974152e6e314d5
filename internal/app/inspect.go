package app

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/iancoleman/orderedmap"

	"github.com/vk/defpeek/internal/compid"
	"github.com/vk/defpeek/internal/dataset"
	"github.com/vk/defpeek/internal/format"
	"github.com/vk/defpeek/internal/naming"
	"github.com/vk/defpeek/internal/recordstore"
	"github.com/vk/defpeek/internal/registry"
	"github.com/vk/defpeek/internal/varying"
)

// Entry returns the display form of one entry. Enums are rendered with their
// declared types, widgets (looked up by "group:child" in either widgets or
// interfaces) through the widget view, everything else as stored.
func (a *App) Entry(ctx context.Context, collection, key string) (any, error) {
	switch {
	case collection == dataset.Enums:
		id, err := parseID(key)
		if err != nil {
			return nil, err
		}
		m, ok, err := a.data.Enum(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s %d", ErrNotFound, collection, id)
		}
		return a.formatter.RenderEnum(ctx, m)

	case collection == dataset.Widgets || collection == dataset.Interfaces:
		p, err := compid.ParsePair(key)
		if err != nil {
			return nil, err
		}
		w, ok, err := a.data.Widget(ctx, p)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: widget %s", ErrNotFound, p)
		}
		return format.RenderWidget(w), nil

	case dataset.IsDirBacked(collection):
		id, err := parseID(key)
		if err != nil {
			return nil, err
		}
		c, err := a.data.Collection(ctx, collection)
		if err != nil {
			return nil, err
		}
		rec, ok := c.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s %d", ErrNotFound, collection, id)
		}
		return rec, nil

	default:
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownCollection, collection)
	}
}

// records returns the id-ordered records of a directory-backed collection, or
// every widget.
func (a *App) records(ctx context.Context, collection string) ([]recordstore.Record, error) {
	if collection == dataset.Widgets {
		return a.data.Widgets(ctx)
	}
	if !dataset.IsDirBacked(collection) {
		return nil, fmt.Errorf("%w: %q has no plain records", registry.ErrUnknownCollection, collection)
	}
	c, err := a.data.Collection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return c.Slots(), nil
}

// Names returns the collision-free constant name of every record in collection.
func (a *App) Names(ctx context.Context, collection string) (map[int64]string, error) {
	recs, err := a.records(ctx, collection)
	if err != nil {
		return nil, err
	}
	return naming.ConstifyArray(recs), nil
}

// Varying projects the selected records of a directory-backed collection down
// to the fields that differ between them, plus keep. No ids selects the
// whole collection.
func (a *App) Varying(ctx context.Context, collection string, ids []int64, keep []string) ([]recordstore.Record, error) {
	recs, err := a.records(ctx, collection)
	if err != nil {
		return nil, err
	}
	if collection != dataset.Widgets && len(ids) > 0 {
		selected := make([]recordstore.Record, len(ids))
		for i, id := range ids {
			if id >= 0 && id < int64(len(recs)) {
				selected[i] = recs[id]
			}
		}
		recs = selected
	}
	return varying.Project(recs, keep...), nil
}

// FormatValue renders a value given on the command line as type tag.
func (a *App) FormatValue(ctx context.Context, tag, value string) (string, error) {
	var raw any = value
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		raw = n
	}
	return a.formatter.FormatTag(ctx, tag, raw)
}

// Dump writes a whole collection, in its display form, to path as JSON.
func (a *App) Dump(ctx context.Context, collection, path string) error {
	v, err := a.collectionView(ctx, collection)
	if err != nil {
		return err
	}
	if err := recordstore.WriteJSON(path, v); err != nil {
		return err
	}
	a.logger.Info("Collection written.", "collection", collection, "path", path)
	return nil
}

func (a *App) collectionView(ctx context.Context, collection string) (any, error) {
	switch collection {
	case dataset.Enums:
		all, err := a.data.Enums(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]int64, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		slices.Sort(ids)

		out := orderedmap.New()
		for _, id := range ids {
			view, err := a.formatter.RenderEnum(ctx, all[id])
			if err != nil {
				return nil, err
			}
			out.Set(strconv.FormatInt(id, 10), view)
		}
		return out, nil

	case dataset.Widgets:
		widgets, err := a.data.Widgets(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]*orderedmap.OrderedMap, len(widgets))
		for i, w := range widgets {
			out[i] = format.RenderWidget(w)
		}
		return out, nil

	case dataset.Interfaces:
		ifaces, err := a.data.Interfaces(ctx)
		if err != nil {
			return nil, err
		}
		out := make([][]recordstore.Record, len(ifaces))
		for i, c := range ifaces {
			out[i] = c.Slots()
		}
		return out, nil

	default:
		return a.records(ctx, collection)
	}
}
