package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusflow/campus-assistant-go/internal/logger"
	"github.com/campusflow/campus-assistant-go/internal/storage"
)

func newTestIndex(t *testing.T, entries []storage.KnowledgeEntry) *Index {
	t.Helper()
	idx := NewIndex(logger.New("error"))
	require.NoError(t, idx.Rebuild(entries))
	return idx
}

func TestLookupExactQuestion(t *testing.T) {
	idx := newTestIndex(t, []storage.KnowledgeEntry{
		{ID: 1, Question: "When is the fee deadline?", Answer: "July 15."},
		{ID: 2, Question: "Where is the library located?", Answer: "Block C."},
	})

	entry, ok := idx.Lookup("when is the fee deadline")
	require.True(t, ok)
	assert.Equal(t, "July 15.", entry.Answer)
}

func TestLookupToleratesSmallVariations(t *testing.T) {
	idx := newTestIndex(t, []storage.KnowledgeEntry{
		{ID: 1, Question: "When is the fee deadline?", Answer: "July 15."},
	})

	entry, ok := idx.Lookup("when is the fees deadline?")
	require.True(t, ok)
	assert.Equal(t, 1, entry.ID)
}

func TestLookupRejectsUnrelatedQuery(t *testing.T) {
	idx := newTestIndex(t, []storage.KnowledgeEntry{
		{ID: 1, Question: "When is the fee deadline?", Answer: "July 15."},
	})

	_, ok := idx.Lookup("how do I join the robotics club")
	assert.False(t, ok)
}

func TestLookupOnEmptyIndex(t *testing.T) {
	idx := newTestIndex(t, nil)
	_, ok := idx.Lookup("anything")
	assert.False(t, ok)

	fresh := NewIndex(logger.New("error"))
	_, ok = fresh.Lookup("anything")
	assert.False(t, ok)
}

func TestRebuildReplacesEntries(t *testing.T) {
	idx := newTestIndex(t, []storage.KnowledgeEntry{
		{ID: 1, Question: "When is the fee deadline?", Answer: "July 15."},
	})
	require.Equal(t, 1, idx.Len())

	require.NoError(t, idx.Rebuild([]storage.KnowledgeEntry{
		{ID: 5, Question: "Where is the hostel office?", Answer: "Block A."},
		{ID: 6, Question: "Where is the library located?", Answer: "Block C."},
	}))
	assert.Equal(t, 2, idx.Len())

	_, ok := idx.Lookup("when is the fee deadline")
	assert.False(t, ok)

	entry, ok := idx.Lookup("where is the hostel office")
	require.True(t, ok)
	assert.Equal(t, 5, entry.ID)
}

func TestLookupPicksClosestQuestion(t *testing.T) {
	idx := newTestIndex(t, []storage.KnowledgeEntry{
		{ID: 1, Question: "Where is the library located?", Answer: "Block C."},
		{ID: 2, Question: "Where is the library canteen?", Answer: "Block D."},
	})

	entry, ok := idx.Lookup("where is the library located")
	require.True(t, ok)
	assert.Equal(t, 1, entry.ID)
}
