package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"Identical", "dbms", "dbms", 100},
		{"Both empty", "", "", 100},
		{"One empty", "dbms", "", 0},
		{"Disjoint", "abc", "xyz", 0},
		{"One substitution", "abc", "abd", 67},
		{"Transposed halves", "abcd", "cdab", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ratio(tt.a, tt.b))
		})
	}
}

func TestRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"database", "databse"},
		{"operating systems", "operating system"},
		{"java", "javascript"},
	}
	for _, p := range pairs {
		assert.Equal(t, Ratio(p[0], p[1]), Ratio(p[1], p[0]), "ratio must be symmetric for %q/%q", p[0], p[1])
	}
}

func TestRatioTypo(t *testing.T) {
	// a single dropped letter should still score well above 75
	assert.Greater(t, Ratio("database", "databse"), 75)
	assert.Less(t, Ratio("database", "networking"), 50)
}

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100, PartialRatio("dbms", "dbms notes unit 3"))
	assert.Equal(t, 100, PartialRatio("", ""))
	assert.Equal(t, 0, PartialRatio("", "anything"))
	assert.Greater(t, PartialRatio("databse", "database management systems"), 80)
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"Database Management Systems", "Computer Networks", "Operating Systems"}

	m, ok := BestMatch("database managment systems", candidates, 75)
	assert.True(t, ok)
	assert.Equal(t, "Database Management Systems", m.Value)
	assert.Greater(t, m.Score, 90)

	_, ok = BestMatch("quantum chromodynamics", candidates, 75)
	assert.False(t, ok)

	_, ok = BestMatch("anything", nil, 75)
	assert.False(t, ok)
}

func TestBestMatchTieKeepsFirst(t *testing.T) {
	m, ok := BestMatch("ab", []string{"ab", "AB"}, 50)
	assert.True(t, ok)
	assert.Equal(t, "ab", m.Value)
}
