package varying

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vk/defpeek/internal/recordstore"
)

type rec = recordstore.Record

func TestProject_OnlyVaryingFields(t *testing.T) {
	records := []rec{
		{"a": int64(1), "b": int64(1)},
		{"a": int64(1), "b": int64(2)},
		{"a": int64(1), "b": int64(3)},
	}

	want := []rec{{"b": int64(1)}, {"b": int64(2)}, {"b": int64(3)}}
	if diff := cmp.Diff(want, Project(records)); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_SingleRecordProjectsEmpty(t *testing.T) {
	assert.Equal(t, []rec{{}}, Project([]rec{{"a": int64(1)}}, "a"))
	assert.Equal(t, []rec{nil, {}, nil}, Project([]rec{nil, {"a": int64(1)}, nil}))
	assert.Equal(t, []rec{}, Project([]rec{}))
}

func TestProject_SparseAndAlwaysKeep(t *testing.T) {
	records := []rec{
		nil,
		{"id": int64(1), "name": "Bronze axe", "ops": []any{"Wield"}},
		nil,
		{"id": int64(3), "name": "Iron axe", "ops": []any{"Wield"}},
	}

	got := Project(records, "id")
	want := []rec{
		nil,
		{"id": int64(1), "name": "Bronze axe"},
		nil,
		{"id": int64(3), "name": "Iron axe"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestKeys_DeepEqualityAndMissingFields(t *testing.T) {
	records := []rec{
		{"params": map[string]any{"x": []any{int64(1)}}, "only": nil},
		{"params": map[string]any{"x": []any{int64(1)}}},
	}

	assert.Equal(t, map[string]bool{"only": true}, Keys(records))
}

func TestKeys_RingComparesLastWithFirst(t *testing.T) {
	// The middle pair is identical; only the wrap-around pair differs on "c".
	records := []rec{
		{"c": int64(1)},
		{"c": int64(2)},
		{"c": int64(2)},
	}
	assert.Equal(t, map[string]bool{"c": true}, Keys(records))

	records = []rec{{"d": "x"}, {}}
	assert.Equal(t, map[string]bool{"d": true}, Keys(records))
}

func TestDiffer_DecidesOnce(t *testing.T) {
	d := NewDiffer()
	first := []rec{{"a": int64(1), "b": int64(1)}, {"a": int64(2), "b": int64(1)}}

	assert.Equal(t, rec{"a": int64(1)}, d.Project(first[0], first))

	// A later call with a different set keeps the first decision.
	other := []rec{{"a": int64(1), "b": int64(1)}, {"a": int64(1), "b": int64(2)}}
	assert.Equal(t, rec{"a": int64(1)}, d.Project(other[1], other))
}

func TestFilterAndRemoveKeys(t *testing.T) {
	r := rec{"id": int64(1), "name": "Coins", "stackable": true, "none": nil}

	assert.Equal(t, rec{"id": int64(1), "none": nil}, FilterKeys("id", "none", "missing")(r))
	assert.Equal(t, rec{"name": "Coins", "stackable": true}, RemoveKeys("id", "none")(r))
	assert.Nil(t, FilterKeys("id")(nil))
	assert.Nil(t, RemoveKeys("id")(nil))
}
