package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/vk/defpeek/internal/compid"
	"github.com/vk/defpeek/internal/ctxlog"
	"github.com/vk/defpeek/internal/enums"
	"github.com/vk/defpeek/internal/fsutil"
	"github.com/vk/defpeek/internal/recordstore"
	"github.com/vk/defpeek/internal/registry"
)

// Collection names. They are case-sensitive.
const (
	Objs       = "objs"
	NPCs       = "npcs"
	Items      = "items"
	Models     = "models"
	RawEnums   = "rawEnums"
	Structs    = "structs"
	Enums      = "enums"
	Interfaces = "interfaces"
	Widgets    = "widgets"
)

// DefaultDirs maps every directory-backed collection, and the interface root,
// to its conventional directory name.
var DefaultDirs = map[string]string{
	Objs:       "object_defs",
	NPCs:       "npc_defs",
	Items:      "item_defs",
	Models:     "models",
	RawEnums:   "enums",
	Structs:    "structs",
	Interfaces: "interface_defs",
}

// IsDirBacked reports whether name is read straight from a directory.
func IsDirBacked(name string) bool {
	_, ok := DefaultDirs[name]
	return ok && name != Interfaces
}

// Dataset exposes the named collections of one dataset root.
type Dataset struct {
	reg  *registry.Registry
	dirs map[string]string
}

// New registers every collection on a fresh registry. dirs overrides entries of
// DefaultDirs; relative directories are resolved against root.
func New(root string, dirs map[string]string) *Dataset {
	d := &Dataset{
		reg:  registry.New(),
		dirs: make(map[string]string, len(DefaultDirs)),
	}
	for name, dir := range DefaultDirs {
		if override, ok := dirs[name]; ok && override != "" {
			dir = override
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		d.dirs[name] = dir
	}

	for _, name := range []string{Objs, NPCs, Items, Models, RawEnums, Structs} {
		dir := d.dirs[name]
		d.reg.Register(name, func(ctx context.Context) (any, error) {
			return recordstore.ReadJSONDir(ctx, dir)
		})
	}
	d.reg.Register(Enums, d.loadEnums)
	d.reg.Register(Interfaces, d.loadInterfaces)
	d.reg.Register(Widgets, d.loadWidgets)
	return d
}

// Registry returns the underlying registry.
func (d *Dataset) Registry() *registry.Registry {
	return d.reg
}

// Dir returns the resolved directory of a directory-backed collection.
func (d *Dataset) Dir(name string) (string, bool) {
	dir, ok := d.dirs[name]
	return dir, ok
}

// Collection returns a directory-backed collection by name.
func (d *Dataset) Collection(ctx context.Context, name string) (*recordstore.Collection, error) {
	return registry.Lookup[*recordstore.Collection](ctx, d.reg, name)
}

// Enums returns every materialized enum keyed by id.
func (d *Dataset) Enums(ctx context.Context) (map[int64]*enums.Materialized, error) {
	return registry.Lookup[map[int64]*enums.Materialized](ctx, d.reg, Enums)
}

// Enum returns one materialized enum.
func (d *Dataset) Enum(ctx context.Context, id int64) (*enums.Materialized, bool, error) {
	all, err := d.Enums(ctx)
	if err != nil {
		return nil, false, err
	}
	m, ok := all[id]
	return m, ok, nil
}

// Interfaces returns one collection per interface, ordered by the id of each
// interface's first widget.
func (d *Dataset) Interfaces(ctx context.Context) ([]*recordstore.Collection, error) {
	return registry.Lookup[[]*recordstore.Collection](ctx, d.reg, Interfaces)
}

// Widgets returns every widget of every interface, in interface order.
func (d *Dataset) Widgets(ctx context.Context) ([]recordstore.Record, error) {
	return registry.Lookup[[]recordstore.Record](ctx, d.reg, Widgets)
}

// Widget finds the widget whose composite id equals id.
func (d *Dataset) Widget(ctx context.Context, id compid.Pair) (recordstore.Record, bool, error) {
	widgets, err := d.Widgets(ctx)
	if err != nil {
		return nil, false, err
	}
	want := int64(id.ID())
	for _, w := range widgets {
		if got, ok := w.ID(); ok && int64(int32(got)) == want {
			return w, true, nil
		}
	}
	return nil, false, nil
}

func (d *Dataset) loadEnums(ctx context.Context) (any, error) {
	raw, err := d.Collection(ctx, RawEnums)
	if err != nil {
		return nil, err
	}
	return enums.MaterializeAll(raw)
}

func (d *Dataset) loadInterfaces(ctx context.Context) (any, error) {
	logger := ctxlog.FromContext(ctx)
	root := d.dirs[Interfaces]

	subdirs, err := fsutil.ListDirs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list interface directory %s: %w", root, err)
	}

	type sub struct {
		firstID int64
		c       *recordstore.Collection
	}
	subs := make([]sub, 0, len(subdirs))
	for _, dir := range subdirs {
		c, err := recordstore.ReadJSONDir(ctx, dir)
		if err != nil {
			return nil, err
		}
		first, ok := c.First()
		if !ok {
			logger.Warn("Skipping interface directory without widgets.", "path", dir)
			continue
		}
		id, _ := first.ID()
		subs = append(subs, sub{firstID: id, c: c})
	}
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].firstID < subs[j].firstID })

	out := make([]*recordstore.Collection, len(subs))
	for i, s := range subs {
		out[i] = s.c
	}
	logger.Debug("Interfaces loaded.", "count", len(out))
	return out, nil
}

func (d *Dataset) loadWidgets(ctx context.Context) (any, error) {
	ifaces, err := d.Interfaces(ctx)
	if err != nil {
		return nil, err
	}
	var out []recordstore.Record
	for _, c := range ifaces {
		out = append(out, c.Present()...)
	}
	return out, nil
}
