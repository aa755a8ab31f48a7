package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

func TestSubjectCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddSubject(ctx, "DBMS", []string{"Database", "  SQL "}))

	subjects, err := s.Subjects(ctx)
	require.NoError(t, err)
	require.Contains(t, subjects, "DBMS")
	assert.Equal(t, []string{"database", "sql"}, subjects["DBMS"].Keywords)
	assert.NotEmpty(t, subjects["DBMS"].CreatedAt)

	err = s.AddSubject(ctx, "DBMS", nil)
	assert.ErrorIs(t, err, domerrors.ErrInvalidInput)

	require.NoError(t, s.EditSubject(ctx, "DBMS", "Databases", []string{"sql"}))
	subjects, err = s.Subjects(ctx)
	require.NoError(t, err)
	assert.NotContains(t, subjects, "DBMS")
	require.Contains(t, subjects, "Databases")

	require.NoError(t, s.DeleteSubject(ctx, "Databases"))
	err = s.DeleteSubject(ctx, "Databases")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestEditSubjectRejectsNameCollision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddSubject(ctx, "DBMS", nil))
	require.NoError(t, s.AddSubject(ctx, "Java", nil))

	err := s.EditSubject(ctx, "Java", "DBMS", nil)
	assert.ErrorIs(t, err, domerrors.ErrInvalidInput)
}

func TestUnitCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddSubject(ctx, "DBMS", nil))
	require.NoError(t, s.AddUnit(ctx, "DBMS", "Unit 1", "unit1.pdf", []string{"er model"}))

	subjects, err := s.Subjects(ctx)
	require.NoError(t, err)
	unit, ok := subjects["DBMS"].Units["Unit 1"]
	require.True(t, ok)
	assert.Equal(t, "unit1.pdf", unit.Filename)
	assert.Equal(t, []string{"er model"}, unit.Keywords)

	require.NoError(t, s.EditUnit(ctx, "DBMS", "Unit 1", "Unit One", []string{"er"}))
	subjects, err = s.Subjects(ctx)
	require.NoError(t, err)
	assert.NotContains(t, subjects["DBMS"].Units, "Unit 1")
	assert.Contains(t, subjects["DBMS"].Units, "Unit One")

	require.NoError(t, s.DeleteUnit(ctx, "DBMS", "Unit One"))
	err = s.DeleteUnit(ctx, "DBMS", "Unit One")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	err = s.AddUnit(ctx, "Missing", "Unit 1", "f.pdf", nil)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestPastPaperCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, err := s.AddPastPaper(ctx, "DBMS 2023", "midterm", "dbms2023.pdf", []string{"dbms"})
	require.NoError(t, err)
	assert.Equal(t, "1", id1)

	id2, err := s.AddPastPaper(ctx, "Java 2023", "final", "java2023.pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "2", id2)

	require.NoError(t, s.DeletePastPaper(ctx, id1))

	// Freed IDs are reused so the sequence stays dense.
	id3, err := s.AddPastPaper(ctx, "CS 2024", "final", "cs2024.pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "1", id3)

	require.NoError(t, s.EditPastPaper(ctx, id2, "Java 2024", "midterm", []string{"oop"}))
	papers, err := s.PastPapers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Java 2024", papers[id2].Name)
	assert.Equal(t, "midterm", papers[id2].Type)

	err = s.EditPastPaper(ctx, "99", "x", "y", nil)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestInfoSectionAndItemCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddInfoSection(ctx, "Library"))
	err := s.AddInfoSection(ctx, "Library")
	assert.ErrorIs(t, err, domerrors.ErrInvalidInput)

	require.NoError(t, s.AddInfoItem(ctx, "Library", "Hours", "Open 9am to 8pm on weekdays.", []string{"library hours"}))

	info, err := s.Info(ctx)
	require.NoError(t, err)
	require.Len(t, info["Library"].Items, 1)
	item := info["Library"].Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Hours", item.Title)

	require.NoError(t, s.EditInfoItem(ctx, "Library", item.ID, "Opening Hours", "Open 9am to 9pm.", nil))
	info, err = s.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Opening Hours", info["Library"].Items[0].Title)

	require.NoError(t, s.RenameInfoSection(ctx, "Library", "Campus Library"))
	info, err = s.Info(ctx)
	require.NoError(t, err)
	assert.NotContains(t, info, "Library")
	assert.Contains(t, info, "Campus Library")

	require.NoError(t, s.DeleteInfoItem(ctx, "Campus Library", item.ID))
	err = s.DeleteInfoItem(ctx, "Campus Library", item.ID)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	require.NoError(t, s.DeleteInfoSection(ctx, "Campus Library"))
}

func TestInfoItemTitleDerivedFromContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddInfoSection(ctx, "Hostel"))
	long := "The hostel office accepts room change requests every Monday between ten and noon only."
	require.NoError(t, s.AddInfoItem(ctx, "Hostel", "", long, nil))

	info, err := s.Info(ctx)
	require.NoError(t, err)
	title := info["Hostel"].Items[0].Title
	assert.Equal(t, long[:50]+"...", title)
}

func TestKnowledgeCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddKnowledge(ctx, "When is the fee deadline?", "July 15."))
	require.NoError(t, s.AddKnowledge(ctx, "Where is the library?", "Block C."))

	entries, err := s.Knowledge(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 2, entries[1].ID)

	require.NoError(t, s.DeleteKnowledge(ctx, 1))
	err = s.DeleteKnowledge(ctx, 1)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestUnansweredAndFeedback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendUnanswered(ctx, "how do i get a bonafide certificate"))
	queries, err := s.Unanswered(ctx)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.NotEmpty(t, queries[0].AskedAt)

	require.NoError(t, s.DeleteUnanswered(ctx, "how do i get a bonafide certificate"))
	err = s.DeleteUnanswered(ctx, "never asked")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	require.NoError(t, s.AppendFeedback(ctx, "very helpful"))
	fb, err := s.Feedback(ctx)
	require.NoError(t, err)
	require.Len(t, fb, 1)

	require.NoError(t, s.DeleteFeedback(ctx, fb[0].Text, fb[0].SubmittedAt))
	err = s.DeleteFeedback(ctx, "very helpful", "2020-01-01T00:00:00Z")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestSynonymsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Nothing curated yet: the document defaults to a list shape.
	syns, err := s.Synonyms(ctx)
	require.NoError(t, err)
	assert.Empty(t, syns)

	curated := map[string][]string{"mess": {"canteen", "cafeteria"}}
	require.NoError(t, s.SaveSynonyms(ctx, curated))

	syns, err = s.Synonyms(ctx)
	require.NoError(t, err)
	assert.Equal(t, curated, syns)
}

func TestAuthRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.AdminAuthRecord(ctx)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
	_, err = s.ChatAuthRecord(ctx)
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	require.NoError(t, s.SaveAdminAuth(ctx, AdminAuth{PasswordHash: "abc", PasswordHint: "Default: 123"}))
	admin, err := s.AdminAuthRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Default: 123", admin.PasswordHint)

	require.NoError(t, s.SaveChatAuth(ctx, ChatAuth{PasswordHash: "abc", LastChanged: "2026-01-01T00:00:00"}))
	chat, err := s.ChatAuthRecord(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T00:00:00", chat.LastChanged)
}

func TestChatLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveChat(ctx, Chat{})
	assert.Error(t, err)

	chat := Chat{
		ID:        "c1",
		Name:      "fee deadline",
		CreatedAt: "2026-02-01T10:00:00",
		Messages: []ChatMessage{
			{Role: "user", Content: "when is the fee deadline"},
			{Role: "assistant", Content: "July 15."},
		},
	}
	require.NoError(t, s.SaveChat(ctx, chat))

	got, err := s.LoadChat(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, chat.Name, got.Name)
	assert.Len(t, got.Messages, 2)

	_, err = s.LoadChat(ctx, "missing")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)

	require.NoError(t, s.RenameChat(ctx, "c1", "fees"))
	got, err = s.LoadChat(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "fees", got.Name)

	require.NoError(t, s.DeleteChat(ctx, "c1"))
	err = s.DeleteChat(ctx, "c1")
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}

func TestSaveChatTrimsHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	chat := Chat{ID: "c2", Name: "long"}
	for i := 0; i < maxChatMessages+10; i++ {
		chat.Messages = append(chat.Messages, ChatMessage{Role: "user", Content: "m"})
	}
	require.NoError(t, s.SaveChat(ctx, chat))

	got, err := s.LoadChat(ctx, "c2")
	require.NoError(t, err)
	assert.Len(t, got.Messages, maxChatMessages)
}

func TestListChatsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveChat(ctx, Chat{ID: "old", Name: "old", CreatedAt: "2026-01-01T00:00:00"}))
	require.NoError(t, s.SaveChat(ctx, Chat{ID: "new", Name: "new", CreatedAt: "2026-03-01T00:00:00"}))

	summaries, err := s.ListChats(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, "old", summaries[1].ID)
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"database", "sql"}, SplitKeywords(" Database , SQL ,, "))
	assert.Empty(t, SplitKeywords("   "))
}
