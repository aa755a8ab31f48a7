package synonym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandCanonicalKey(t *testing.T) {
	e := NewExpander(nil)

	got := e.Expand("dbms")
	assert.Equal(t, "dbms", got[0])
	assert.ElementsMatch(t, []string{"dbms", "database management system", "database", "db"}, got)
}

func TestExpandSynonymHitsKey(t *testing.T) {
	e := NewExpander(nil)

	got := e.Expand("db")
	assert.Contains(t, got, "dbms")
	assert.Contains(t, got, "database")
}

func TestExpandUnknownToken(t *testing.T) {
	e := NewExpander(nil)

	assert.Equal(t, []string{"blockchain"}, e.Expand("blockchain"))
}

func TestExpandQuery(t *testing.T) {
	e := NewExpander(nil)

	got := e.ExpandQuery("where are the db notes?")
	assert.Contains(t, got, "where")
	assert.Contains(t, got, "dbms")
	assert.Contains(t, got, "database management system")
	assert.Contains(t, got, "material")
	// original tokens lead the expansion
	assert.Equal(t, []string{"where", "are", "the", "db", "notes"}, got[:5])
}

func TestExpandQueryDeduplicates(t *testing.T) {
	e := NewExpander(nil)

	got := e.ExpandQuery("db db db")
	count := 0
	for _, term := range got {
		if term == "db" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExpandQueryEmpty(t *testing.T) {
	e := NewExpander(nil)

	assert.Nil(t, e.ExpandQuery(""))
	assert.Nil(t, e.ExpandQuery("?!"))
}

func TestCuratedOverlayReplacesKey(t *testing.T) {
	e := NewExpander(map[string][]string{
		"java": {"jvm", "jdk"},
		"ml":   {"machine learning", "ai"},
	})

	got := e.Expand("java")
	assert.ElementsMatch(t, []string{"java", "jvm", "jdk"}, got)

	got = e.Expand("machine learning")
	assert.Contains(t, got, "ml")
}

func TestDefaultsReturnsCopy(t *testing.T) {
	d := Defaults()
	d["dbms"] = nil

	e := NewExpander(nil)
	assert.Contains(t, e.Expand("dbms"), "database")
}
