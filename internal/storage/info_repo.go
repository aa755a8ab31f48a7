package storage

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// Info returns the campus-information catalog keyed by section name.
func (s *Store) Info(ctx context.Context) (map[string]InfoSection, error) {
	var out map[string]InfoSection
	if err := s.LoadInto(ctx, DocInfo, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]InfoSection{}
	}
	return out, nil
}

func (s *Store) updateInfo(ctx context.Context, modify func(info map[string]InfoSection) error) error {
	return s.Update(ctx, DocInfo, func(raw json.RawMessage) (any, error) {
		var info map[string]InfoSection
		if err := json.Unmarshal(raw, &info); err != nil {
			return nil, domerrors.NewStoreError(DocInfo, "update", err)
		}
		if info == nil {
			info = map[string]InfoSection{}
		}
		if err := modify(info); err != nil {
			return nil, err
		}
		return info, nil
	})
}

// AddInfoSection creates an empty section.
func (s *Store) AddInfoSection(ctx context.Context, name string) error {
	if name == "" {
		return domerrors.NewValidationError("category", "section name is required")
	}
	return s.updateInfo(ctx, func(info map[string]InfoSection) error {
		if _, exists := info[name]; exists {
			return domerrors.ErrInvalidInput
		}
		info[name] = InfoSection{
			Keywords:  []string{},
			Items:     []InfoItem{},
			CreatedAt: nowISO(),
		}
		return nil
	})
}

// RenameInfoSection moves a section to a new name.
func (s *Store) RenameInfoSection(ctx context.Context, oldName, newName string) error {
	if newName == "" {
		return domerrors.NewValidationError("new_category", "section name is required")
	}
	return s.updateInfo(ctx, func(info map[string]InfoSection) error {
		section, ok := info[oldName]
		if !ok {
			return domerrors.ErrNotFound
		}
		if oldName == newName {
			section.UpdatedAt = nowISO()
			info[oldName] = section
			return nil
		}
		if _, exists := info[newName]; exists {
			return domerrors.ErrInvalidInput
		}
		section.UpdatedAt = nowISO()
		delete(info, oldName)
		info[newName] = section
		return nil
	})
}

// DeleteInfoSection removes a section and all its items.
func (s *Store) DeleteInfoSection(ctx context.Context, name string) error {
	return s.updateInfo(ctx, func(info map[string]InfoSection) error {
		if _, ok := info[name]; !ok {
			return domerrors.ErrNotFound
		}
		delete(info, name)
		return nil
	})
}

// AddInfoItem appends an item to a section. A missing title is derived
// from the content's first 50 characters.
func (s *Store) AddInfoItem(ctx context.Context, section, title, content string, keywords []string) error {
	if content == "" {
		return domerrors.NewValidationError("content", "content is required")
	}
	return s.updateInfo(ctx, func(info map[string]InfoSection) error {
		sec, ok := info[section]
		if !ok {
			return domerrors.ErrNotFound
		}
		sec.Items = append(sec.Items, InfoItem{
			ID:        uuid.NewString(),
			Title:     deriveTitle(title, content),
			Content:   content,
			Keywords:  normalizeKeywords(keywords),
			CreatedAt: nowISO(),
		})
		info[section] = sec
		return nil
	})
}

// EditInfoItem updates an item in place.
func (s *Store) EditInfoItem(ctx context.Context, section, itemID, title, content string, keywords []string) error {
	return s.updateInfo(ctx, func(info map[string]InfoSection) error {
		sec, ok := info[section]
		if !ok {
			return domerrors.ErrNotFound
		}
		for i, item := range sec.Items {
			if item.ID != itemID {
				continue
			}
			item.Title = deriveTitle(title, content)
			item.Content = content
			item.Keywords = normalizeKeywords(keywords)
			item.UpdatedAt = nowISO()
			sec.Items[i] = item
			info[section] = sec
			return nil
		}
		return domerrors.ErrNotFound
	})
}

// DeleteInfoItem removes an item from a section.
func (s *Store) DeleteInfoItem(ctx context.Context, section, itemID string) error {
	return s.updateInfo(ctx, func(info map[string]InfoSection) error {
		sec, ok := info[section]
		if !ok {
			return domerrors.ErrNotFound
		}
		kept := sec.Items[:0]
		for _, item := range sec.Items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(sec.Items) {
			return domerrors.ErrNotFound
		}
		sec.Items = kept
		info[section] = sec
		return nil
	})
}

func deriveTitle(title, content string) string {
	if title != "" {
		return title
	}
	runes := []rune(content)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return content
}
