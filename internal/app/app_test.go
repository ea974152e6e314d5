package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/defpeek/internal/config"
	"github.com/vk/defpeek/internal/dataset"
	"github.com/vk/defpeek/internal/recordstore"
	"github.com/vk/defpeek/internal/registry"
)

func newDataset(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteFixture(t, root, "item_defs/10.json", `{"id": 10, "name": "Sword", "cost": 5}`)
	WriteFixture(t, root, "item_defs/20.json", `{"id": 20, "name": "sword", "cost": 5}`)
	WriteFixture(t, root, "item_defs/30.json", `{"id": 30, "name": "Shield", "cost": 9}`)
	WriteFixture(t, root, "enums/1.json",
		`{"id": 1, "keyType": "INTEGER", "valType": "OBJ", "keys": [0, 1], "intVals": [30, 99999], "defaultInt": -1}`)
	WriteFixture(t, root, "interface_defs/inv/0.json",
		`{"id": 9764864, "parentId": -1, "onOpListener": [-2147483644, 9764865]}`)
	return root
}

func TestNewApp_SessionFile(t *testing.T) {
	root := newDataset(t)
	WriteFixture(t, root, config.DefaultFileName, "collection \"items\" {\n  dir = \"item_defs\"\n}\nlog {\n  format = \"json\"\n}\n")

	a, _, logs := SetupAppTest(t, root)
	assert.Equal(t, root, a.Session().Root)
	assert.Equal(t, "json", a.Session().LogFormat)
	assert.Equal(t, "debug", a.Session().LogLevel, "flag overrides the file")
	assert.Contains(t, logs.String(), `"msg":"Session configured."`)
}

func TestNewApp_InvalidOverride(t *testing.T) {
	_, err := NewApp(&SafeBuffer{}, &SafeBuffer{}, &Config{Root: t.TempDir(), LogLevel: "verbose"})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestEntry(t *testing.T) {
	a, _, _ := SetupAppTest(t, newDataset(t))
	ctx := a.Context()

	v, err := a.Entry(ctx, dataset.Items, "30")
	require.NoError(t, err)
	assert.Equal(t, "Shield", v.(recordstore.Record).Name())

	_, err = a.Entry(ctx, dataset.Items, "31")
	require.ErrorIs(t, err, ErrNotFound)

	v, err = a.Entry(ctx, dataset.Enums, "1")
	require.NoError(t, err)
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"INTEGER":"OBJ","0":"SHIELD_30","1":"99999"}`, string(data))

	v, err = a.Entry(ctx, dataset.Widgets, "149:0")
	require.NoError(t, err)
	data, err = json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"149:0","onOpListener":["^MENU_OP","149:1"],"parentId":"65535:65535"}`, string(data))

	_, err = a.Entry(ctx, "things", "1")
	require.ErrorIs(t, err, registry.ErrUnknownCollection)

	_, err = a.Entry(ctx, dataset.Objs, "1")
	require.Error(t, err, "object_defs is missing")
}

func TestNames(t *testing.T) {
	a, _, _ := SetupAppTest(t, newDataset(t))

	names, err := a.Names(a.Context(), dataset.Items)
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{10: "SWORD", 20: "SWORD_20", 30: "SHIELD"}, names)
}

func TestVarying(t *testing.T) {
	a, _, _ := SetupAppTest(t, newDataset(t))

	got, err := a.Varying(a.Context(), dataset.Items, []int64{10, 20}, []string{"id"})
	require.NoError(t, err)
	assert.Equal(t, []recordstore.Record{
		{"id": int64(10), "name": "Sword"},
		{"id": int64(20), "name": "sword"},
	}, got)
}

func TestFormatValue(t *testing.T) {
	a, _, _ := SetupAppTest(t, newDataset(t))

	got, err := a.FormatValue(a.Context(), "NAMEDOBJ", "10")
	require.NoError(t, err)
	assert.Equal(t, "SWORD_10", got)

	got, err = a.FormatValue(a.Context(), "COORDGRID", "-1")
	require.NoError(t, err)
	assert.Equal(t, "null", got)
}

func TestDump(t *testing.T) {
	a, _, logs := SetupAppTest(t, newDataset(t))
	path := filepath.Join(t.TempDir(), "enums.json")

	require.NoError(t, a.Dump(a.Context(), dataset.Enums, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": {"INTEGER": "OBJ", "0": "SHIELD_30", "1": "99999"}}`, string(data))
	assert.Contains(t, logs.String(), "Collection written.")

	require.NoError(t, a.Dump(a.Context(), dataset.Items, path))
	var items []any
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &items))
	assert.Len(t, items, 31)
	assert.Nil(t, items[0])
}

func TestPrint(t *testing.T) {
	a, out, _ := SetupAppTest(t, newDataset(t))
	require.NoError(t, a.Print(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
}
