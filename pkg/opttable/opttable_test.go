package opttable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() Table {
	return Table{
		{Key: "performance.cache-size", VolType: "performance/io-cache", Option: "cache-size"},
		{Key: "performance.cache-size", VolType: "performance/quick-read", Option: "cache-size"},
		{Key: "performance.write-behind", VolType: "performance/write-behind", Option: "!perf", Default: "on", HasDefault: true},
		{Key: "auth.allow", VolType: "protocol/server", Option: "!auth"},
	}
}

func TestCheckOptionExistsFullyQualified(t *testing.T) {
	tbl := testTable()

	s := tbl.CheckOptionExists("performance.cache-size")
	assert.True(t, s.Exists)
	assert.Empty(t, s.Suggestion)

	s = tbl.CheckOptionExists("performance.nonexistent")
	assert.False(t, s.Exists)
}

func TestCheckOptionExistsBareUniqueSuggestion(t *testing.T) {
	tbl := testTable()

	s := tbl.CheckOptionExists("allow")
	assert.True(t, s.Exists)
	assert.Equal(t, "auth.allow", s.Suggestion)
}

func TestCheckOptionExistsBareAmbiguous(t *testing.T) {
	tbl := testTable()

	s := tbl.CheckOptionExists("cache-size")
	assert.True(t, s.Exists)
	assert.Empty(t, s.Suggestion)
}

func TestCheckOptionExistsBareUnknown(t *testing.T) {
	tbl := testTable()

	s := tbl.CheckOptionExists("bogus")
	assert.False(t, s.Exists)
}

func TestEntryEffectiveOptionDerivesFromKey(t *testing.T) {
	e := Entry{Key: "performance.io-thread-count"}
	assert.Equal(t, "io-thread-count", e.EffectiveOption())
}

func TestEntryEffectiveOptionExplicit(t *testing.T) {
	e := Entry{Key: "performance.cache-size", Option: "cache-size"}
	assert.Equal(t, "cache-size", e.EffectiveOption())
}

func TestEntryIsSpecial(t *testing.T) {
	special := Entry{Key: "auth.allow", Option: "!auth"}
	assert.True(t, special.IsSpecial())

	ordinary := Entry{Key: "performance.cache-size", Option: "cache-size"}
	assert.False(t, ordinary.IsSpecial())
}

func TestDefaultTableIsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Default)
}
