package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/defpeek/internal/recordstore"
)

func TestConstify(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Goblin Mail", expected: "GOBLIN_MAIL"},
		{input: "", expected: "NULL"},
		{input: "9lives", expected: "_9LIVES"},
		{input: "Rune 2h sword", expected: "RUNE_2H_SWORD"},
		{input: "Karamja gloves (3)", expected: "KARAMJA_GLOVES_3"},
		{input: "???", expected: "NULL"},
		{input: "Jack-o'-lantern", expected: "JACKOLANTERN"},
		{input: "Straße", expected: "STRASSE"},
		{input: "_hidden", expected: "_HIDDEN"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Constify(tc.input))
		})
	}
}

func TestConstifyArray_Collision(t *testing.T) {
	records := []recordstore.Record{
		{"id": int64(10), "name": "Sword"},
		nil,
		{"id": int64(20), "name": "sword"},
		{"id": int64(30), "name": "Shield"},
		{"name": "no id"},
	}

	assert.Equal(t, map[int64]string{10: "SWORD", 20: "SWORD_20", 30: "SHIELD"}, ConstifyArray(records))
}

func TestConstifyArray_DisambiguatedNameIsReserved(t *testing.T) {
	records := []recordstore.Record{
		{"id": int64(1), "name": "A"},
		{"id": int64(2), "name": "A"},
		{"id": int64(3), "name": "A 2"},
	}

	names := ConstifyArray(records)
	assert.Equal(t, "A", names[1])
	assert.Equal(t, "A_2", names[2])
	assert.Equal(t, "A_2_3", names[3])
}
