package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercases and trims", "  Where are the DBMS Notes  ", "where are the dbms notes"},
		{"Keeps sentence marks", "really?! ok, fine.", "really?! ok, fine."},
		{"Strips symbols", "notes @#$ java%", "notes java"},
		{"Collapses whitespace", "a\t\tb\n c", "a b c"},
		{"Empty input", "", ""},
		{"Only symbols", "@#$%^", ""},
		{"Digits survive", "unit 3 PYQ 2024", "unit 3 pyq 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Where are the DBMS Notes  ",
		"really?! ok, fine.",
		"notes @#$ java%",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Drops punctuation from tokens", "notes? Yes, notes!", []string{"notes", "yes", "notes"}},
		{"Empty input", "", nil},
		{"Only punctuation", "?!.,", nil},
		{"Mixed case", "Java NOTES please", []string{"java", "notes", "please"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestContainsToken(t *testing.T) {
	assert.True(t, ContainsToken("where are the DBMS notes?", "dbms"))
	assert.True(t, ContainsToken("exam!", "Exam"))
	assert.False(t, ContainsToken("database management", "data"))
	assert.False(t, ContainsToken("anything", ""))
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"Three sentences", "I hear you. That sounds hard! Want to talk?", []string{"I hear you", "That sounds hard", "Want to talk"}},
		{"Trailing text without terminator", "one. two", []string{"one", "two"}},
		{"Empty", "", nil},
		{"Consecutive terminators", "wow!! ok.", []string{"wow", "ok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.input))
		})
	}
}

func TestCountSentences(t *testing.T) {
	assert.Equal(t, 0, CountSentences(""))
	assert.Equal(t, 2, CountSentences("a. b."))
	assert.Equal(t, 1, CountSentences("no terminator"))
}
