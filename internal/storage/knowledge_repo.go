package storage

import (
	"context"
	"encoding/json"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

// Knowledge returns all curated question/answer pairs.
func (s *Store) Knowledge(ctx context.Context) ([]KnowledgeEntry, error) {
	var out []KnowledgeEntry
	if err := s.LoadInto(ctx, DocKnowledge, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddKnowledge appends a question/answer pair.
func (s *Store) AddKnowledge(ctx context.Context, question, answer string) error {
	if question == "" || answer == "" {
		return domerrors.NewValidationError("question", "question and answer are required")
	}
	return s.Update(ctx, DocKnowledge, func(raw json.RawMessage) (any, error) {
		var entries []KnowledgeEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, domerrors.NewStoreError(DocKnowledge, "update", err)
		}
		maxID := 0
		for _, e := range entries {
			if e.ID > maxID {
				maxID = e.ID
			}
		}
		entries = append(entries, KnowledgeEntry{
			ID:        maxID + 1,
			Question:  question,
			Answer:    answer,
			CreatedAt: nowISO(),
		})
		return entries, nil
	})
}

// DeleteKnowledge removes the pair with the given ID.
func (s *Store) DeleteKnowledge(ctx context.Context, id int) error {
	removed := false
	err := s.Update(ctx, DocKnowledge, func(raw json.RawMessage) (any, error) {
		var entries []KnowledgeEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, domerrors.NewStoreError(DocKnowledge, "update", err)
		}
		kept := entries[:0]
		for _, e := range entries {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		removed = len(kept) < len(entries)
		return kept, nil
	})
	if err != nil {
		return err
	}
	if !removed {
		return domerrors.ErrNotFound
	}
	return nil
}

// Unanswered returns the queries no handler could answer.
func (s *Store) Unanswered(ctx context.Context) ([]UnansweredQuery, error) {
	var out []UnansweredQuery
	if err := s.LoadInto(ctx, DocUnanswered, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendUnanswered records a query for admin review.
func (s *Store) AppendUnanswered(ctx context.Context, query string) error {
	return s.Update(ctx, DocUnanswered, func(raw json.RawMessage) (any, error) {
		var entries []UnansweredQuery
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, domerrors.NewStoreError(DocUnanswered, "update", err)
		}
		return append(entries, UnansweredQuery{Query: query, AskedAt: nowISO()}), nil
	})
}

// DeleteUnanswered removes every entry exactly matching query.
func (s *Store) DeleteUnanswered(ctx context.Context, query string) error {
	removed := false
	err := s.Update(ctx, DocUnanswered, func(raw json.RawMessage) (any, error) {
		var entries []UnansweredQuery
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, domerrors.NewStoreError(DocUnanswered, "update", err)
		}
		kept := entries[:0]
		for _, e := range entries {
			if e.Query != query {
				kept = append(kept, e)
			}
		}
		removed = len(kept) < len(entries)
		return kept, nil
	})
	if err != nil {
		return err
	}
	if !removed {
		return domerrors.ErrNotFound
	}
	return nil
}

// Feedback returns all submitted feedback.
func (s *Store) Feedback(ctx context.Context) ([]FeedbackEntry, error) {
	var out []FeedbackEntry
	if err := s.LoadInto(ctx, DocFeedback, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendFeedback stores one feedback entry.
func (s *Store) AppendFeedback(ctx context.Context, text string) error {
	if text == "" {
		return domerrors.NewValidationError("feedback", "feedback cannot be empty")
	}
	return s.Update(ctx, DocFeedback, func(raw json.RawMessage) (any, error) {
		var entries []FeedbackEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, domerrors.NewStoreError(DocFeedback, "update", err)
		}
		return append(entries, FeedbackEntry{Text: text, SubmittedAt: nowISO()}), nil
	})
}

// DeleteFeedback removes the entry matching both text and timestamp.
func (s *Store) DeleteFeedback(ctx context.Context, text, submittedAt string) error {
	removed := false
	err := s.Update(ctx, DocFeedback, func(raw json.RawMessage) (any, error) {
		var entries []FeedbackEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, domerrors.NewStoreError(DocFeedback, "update", err)
		}
		kept := entries[:0]
		for _, e := range entries {
			if e.Text == text && e.SubmittedAt == submittedAt {
				continue
			}
			kept = append(kept, e)
		}
		removed = len(kept) < len(entries)
		return kept, nil
	})
	if err != nil {
		return err
	}
	if !removed {
		return domerrors.ErrNotFound
	}
	return nil
}

// Synonyms returns the curated synonym overlay.
func (s *Store) Synonyms(ctx context.Context) (map[string][]string, error) {
	raw, err := s.Load(ctx, DocSynonyms)
	if err != nil {
		return nil, err
	}
	var out map[string][]string
	if err := json.Unmarshal(raw, &out); err != nil {
		// synonyms default to [] by naming convention; treat a list
		// payload as no overlay
		return map[string][]string{}, nil
	}
	if out == nil {
		out = map[string][]string{}
	}
	return out, nil
}

// SaveSynonyms replaces the curated synonym map.
func (s *Store) SaveSynonyms(ctx context.Context, synonyms map[string][]string) error {
	return s.Save(ctx, DocSynonyms, synonyms)
}

// Templates returns the curated empathetic template overlay, keyed by
// emotion label. Labels absent from the overlay fall back to the
// built-in pools.
func (s *Store) Templates(ctx context.Context) (map[string][]string, error) {
	raw, err := s.Load(ctx, DocTemplates)
	if err != nil {
		return nil, err
	}
	var out map[string][]string
	if err := json.Unmarshal(raw, &out); err != nil {
		// templates default to [] by naming convention; treat a list
		// payload as no overlay
		return map[string][]string{}, nil
	}
	if out == nil {
		out = map[string][]string{}
	}
	return out, nil
}

// SaveTemplates replaces the curated template overlay.
func (s *Store) SaveTemplates(ctx context.Context, templates map[string][]string) error {
	return s.Save(ctx, DocTemplates, templates)
}
