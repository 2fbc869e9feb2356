package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrosswalkIndex(t *testing.T) {
	cw := Crosswalk{Entries: []CrosswalkEntry{
		{CharacteristicName: "Nitrate", Parameter: "Nitrate-N"},
		{CharacteristicName: "Phosphorus", Parameter: "Total P"},
		{CharacteristicName: "Nitrate", Parameter: "Total N"},
	}}

	idx := cw.Index()
	assert.Len(t, idx, 2)
	assert.Equal(t, []string{"Nitrate-N", "Total N"}, idx["Nitrate"])
	assert.Equal(t, []string{"Total P"}, idx["Phosphorus"])

	_, ok := idx["pH"]
	assert.False(t, ok)
}

func TestCrosswalkIndexKeepsRepeatedIdenticalEntries(t *testing.T) {
	// Two identical rows still mean two join matches, so the index must
	// not collapse them.
	cw := Crosswalk{Entries: []CrosswalkEntry{
		{CharacteristicName: "Nitrate", Parameter: "Nitrate-N"},
		{CharacteristicName: "Nitrate", Parameter: "Nitrate-N"},
	}}

	assert.Equal(t, []string{"Nitrate-N", "Nitrate-N"}, cw.Index()["Nitrate"])
	assert.Equal(t, []string{"Nitrate"}, cw.DuplicatedNames())
}

func TestCrosswalkDuplicatedNames(t *testing.T) {
	tests := []struct {
		name    string
		entries []CrosswalkEntry
		want    []string
	}{
		{
			name: "no duplicates",
			entries: []CrosswalkEntry{
				{CharacteristicName: "Nitrate", Parameter: "Nitrate-N"},
				{CharacteristicName: "Phosphorus", Parameter: "Total P"},
			},
			want: nil,
		},
		{
			name: "one duplicated name",
			entries: []CrosswalkEntry{
				{CharacteristicName: "Nitrate", Parameter: "Nitrate-N"},
				{CharacteristicName: "Nitrate", Parameter: "Total N"},
				{CharacteristicName: "Phosphorus", Parameter: "Total P"},
			},
			want: []string{"Nitrate"},
		},
		{
			name: "multiple duplicated names sorted",
			entries: []CrosswalkEntry{
				{CharacteristicName: "Phosphorus", Parameter: "Total P"},
				{CharacteristicName: "Phosphorus", Parameter: "Ortho-P"},
				{CharacteristicName: "Ammonia", Parameter: "NH3"},
				{CharacteristicName: "Ammonia", Parameter: "NH4"},
			},
			want: []string{"Ammonia", "Phosphorus"},
		},
		{
			name:    "empty crosswalk",
			entries: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := Crosswalk{Entries: tt.entries}
			assert.Equal(t, tt.want, cw.DuplicatedNames())
		})
	}
}

func TestCrosswalkLen(t *testing.T) {
	assert.Zero(t, Crosswalk{}.Len())
	assert.Equal(t, 2, Crosswalk{Entries: []CrosswalkEntry{
		{CharacteristicName: "Nitrate", Parameter: "Nitrate-N"},
		{CharacteristicName: "pH", Parameter: "pH"},
	}}.Len())
}
