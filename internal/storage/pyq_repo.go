package storage

import (
	"context"
	"encoding/json"
	"strconv"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// PastPapers returns the question-paper catalog keyed by paper ID.
func (s *Store) PastPapers(ctx context.Context) (map[string]PastPaper, error) {
	var out map[string]PastPaper
	if err := s.LoadInto(ctx, DocPYQ, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]PastPaper{}
	}
	return out, nil
}

func (s *Store) updatePastPapers(ctx context.Context, modify func(papers map[string]PastPaper) error) error {
	return s.Update(ctx, DocPYQ, func(raw json.RawMessage) (any, error) {
		var papers map[string]PastPaper
		if err := json.Unmarshal(raw, &papers); err != nil {
			return nil, domerrors.NewStoreError(DocPYQ, "update", err)
		}
		if papers == nil {
			papers = map[string]PastPaper{}
		}
		if err := modify(papers); err != nil {
			return nil, err
		}
		return papers, nil
	})
}

// AddPastPaper stores a new paper and returns its assigned ID.
func (s *Store) AddPastPaper(ctx context.Context, name, fileType, filename string, keywords []string) (string, error) {
	if name == "" {
		return "", domerrors.NewValidationError("name", "paper name is required")
	}
	var id string
	err := s.updatePastPapers(ctx, func(papers map[string]PastPaper) error {
		id = nextPaperID(papers)
		papers[id] = PastPaper{
			ID:         id,
			Name:       name,
			Keywords:   normalizeKeywords(keywords),
			Type:       fileType,
			Filename:   filename,
			UploadedAt: nowISO(),
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// EditPastPaper updates a paper's name, keywords, and type.
func (s *Store) EditPastPaper(ctx context.Context, id, name, fileType string, keywords []string) error {
	return s.updatePastPapers(ctx, func(papers map[string]PastPaper) error {
		paper, ok := papers[id]
		if !ok {
			return domerrors.ErrNotFound
		}
		paper.Name = name
		paper.Keywords = normalizeKeywords(keywords)
		paper.Type = fileType
		paper.UpdatedAt = nowISO()
		papers[id] = paper
		return nil
	})
}

// DeletePastPaper removes a paper from the catalog.
func (s *Store) DeletePastPaper(ctx context.Context, id string) error {
	return s.updatePastPapers(ctx, func(papers map[string]PastPaper) error {
		if _, ok := papers[id]; !ok {
			return domerrors.ErrNotFound
		}
		delete(papers, id)
		return nil
	})
}

// nextPaperID picks the smallest positive integer not already in use.
// IDs stay string-typed in the document.
func nextPaperID(papers map[string]PastPaper) string {
	for i := 1; ; i++ {
		id := strconv.Itoa(i)
		if _, taken := papers[id]; !taken {
			return id
		}
	}
}
