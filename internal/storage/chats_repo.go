package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// maxChatMessages caps stored history per chat to the newest turns.
const maxChatMessages = 40

func chatDoc(id string) string {
	return filepath.Join(ChatsSubdir, id+".json")
}

// SaveChat persists a chat as its own document, trimming history to the
// newest messages.
func (s *Store) SaveChat(ctx context.Context, chat Chat) error {
	if chat.ID == "" {
		return domerrors.NewValidationError("id", "chat id is required")
	}
	if len(chat.Messages) > maxChatMessages {
		chat.Messages = chat.Messages[len(chat.Messages)-maxChatMessages:]
	}
	return s.Save(ctx, chatDoc(chat.ID), chat)
}

// LoadChat returns a saved chat, or ErrNotFound when no such chat
// exists.
func (s *Store) LoadChat(ctx context.Context, id string) (Chat, error) {
	raw, err := s.Load(ctx, chatDoc(id))
	if err != nil {
		return Chat{}, err
	}
	var chat Chat
	if err := json.Unmarshal(raw, &chat); err != nil || chat.ID == "" {
		return Chat{}, domerrors.ErrNotFound
	}
	return chat, nil
}

// ListChats returns summaries of all saved chats, newest first.
func (s *Store) ListChats(ctx context.Context) ([]ChatSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.dir, ChatsSubdir))
	if err != nil {
		if os.IsNotExist(err) {
			return []ChatSummary{}, nil
		}
		return nil, domerrors.NewStoreError(ChatsSubdir, "list", err)
	}

	summaries := make([]ChatSummary, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		chat, err := s.LoadChat(ctx, strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		summaries = append(summaries, ChatSummary{
			ID:           chat.ID,
			Name:         chat.Name,
			CreatedAt:    chat.CreatedAt,
			MessageCount: len(chat.Messages),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt != summaries[j].CreatedAt {
			return summaries[i].CreatedAt > summaries[j].CreatedAt
		}
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

// RenameChat updates a saved chat's display name.
func (s *Store) RenameChat(ctx context.Context, id, name string) error {
	chat, err := s.LoadChat(ctx, id)
	if err != nil {
		return err
	}
	chat.Name = name
	return s.Save(ctx, chatDoc(id), chat)
}

// DeleteChat removes a saved chat. Missing chats are ErrNotFound.
func (s *Store) DeleteChat(ctx context.Context, id string) error {
	if _, err := s.LoadChat(ctx, id); err != nil {
		return err
	}
	return s.Delete(ctx, chatDoc(id))
}
