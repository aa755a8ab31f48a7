package storage

import (
	"context"
	"encoding/json"
	"time"

	domerrors "github.com/campusflow/campus-assistant-go/internal/errors"
)

func nowISO() string {
	return time.Now().Format(time.RFC3339)
}

// Subjects returns the full notes catalog.
func (s *Store) Subjects(ctx context.Context) (map[string]Subject, error) {
	var out map[string]Subject
	if err := s.LoadInto(ctx, DocSubjects, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]Subject{}
	}
	return out, nil
}

func (s *Store) updateSubjects(ctx context.Context, modify func(subjects map[string]Subject) error) error {
	return s.Update(ctx, DocSubjects, func(raw json.RawMessage) (any, error) {
		var subjects map[string]Subject
		if err := json.Unmarshal(raw, &subjects); err != nil {
			return nil, domerrors.NewStoreError(DocSubjects, "update", err)
		}
		if subjects == nil {
			subjects = map[string]Subject{}
		}
		if err := modify(subjects); err != nil {
			return nil, err
		}
		return subjects, nil
	})
}

// AddSubject creates a new subject. Fails with ErrInvalidInput when the
// name is already taken.
func (s *Store) AddSubject(ctx context.Context, name string, keywords []string) error {
	if name == "" {
		return domerrors.NewValidationError("subject_name", "subject name is required")
	}
	return s.updateSubjects(ctx, func(subjects map[string]Subject) error {
		if _, exists := subjects[name]; exists {
			return domerrors.ErrInvalidInput
		}
		subjects[name] = Subject{
			Keywords:  normalizeKeywords(keywords),
			Units:     map[string]Unit{},
			CreatedAt: nowISO(),
		}
		return nil
	})
}

// EditSubject renames a subject and replaces its keywords. Renaming onto
// an existing subject fails.
func (s *Store) EditSubject(ctx context.Context, oldName, newName string, keywords []string) error {
	return s.updateSubjects(ctx, func(subjects map[string]Subject) error {
		subject, ok := subjects[oldName]
		if !ok {
			return domerrors.ErrNotFound
		}
		subject.Keywords = normalizeKeywords(keywords)
		subject.UpdatedAt = nowISO()

		if newName != "" && newName != oldName {
			if _, exists := subjects[newName]; exists {
				return domerrors.ErrInvalidInput
			}
			delete(subjects, oldName)
			subjects[newName] = subject
			return nil
		}
		subjects[oldName] = subject
		return nil
	})
}

// DeleteSubject removes a subject and its units.
func (s *Store) DeleteSubject(ctx context.Context, name string) error {
	return s.updateSubjects(ctx, func(subjects map[string]Subject) error {
		if _, ok := subjects[name]; !ok {
			return domerrors.ErrNotFound
		}
		delete(subjects, name)
		return nil
	})
}

// AddUnit attaches an uploaded unit to a subject.
func (s *Store) AddUnit(ctx context.Context, subjectName, unitName, filename string, keywords []string) error {
	if unitName == "" {
		return domerrors.NewValidationError("unit_name", "unit name is required")
	}
	return s.updateSubjects(ctx, func(subjects map[string]Subject) error {
		subject, ok := subjects[subjectName]
		if !ok {
			return domerrors.ErrNotFound
		}
		if subject.Units == nil {
			subject.Units = map[string]Unit{}
		}
		subject.Units[unitName] = Unit{
			Filename:   filename,
			Keywords:   normalizeKeywords(keywords),
			UploadedAt: nowISO(),
		}
		subjects[subjectName] = subject
		return nil
	})
}

// EditUnit renames a unit and replaces its keywords.
func (s *Store) EditUnit(ctx context.Context, subjectName, oldUnitName, newUnitName string, keywords []string) error {
	return s.updateSubjects(ctx, func(subjects map[string]Subject) error {
		subject, ok := subjects[subjectName]
		if !ok {
			return domerrors.ErrNotFound
		}
		unit, ok := subject.Units[oldUnitName]
		if !ok {
			return domerrors.ErrNotFound
		}
		unit.Keywords = normalizeKeywords(keywords)
		unit.UpdatedAt = nowISO()

		if newUnitName != "" && newUnitName != oldUnitName {
			delete(subject.Units, oldUnitName)
			subject.Units[newUnitName] = unit
		} else {
			subject.Units[oldUnitName] = unit
		}
		subjects[subjectName] = subject
		return nil
	})
}

// DeleteUnit removes a unit from a subject.
func (s *Store) DeleteUnit(ctx context.Context, subjectName, unitName string) error {
	return s.updateSubjects(ctx, func(subjects map[string]Subject) error {
		subject, ok := subjects[subjectName]
		if !ok {
			return domerrors.ErrNotFound
		}
		if _, ok := subject.Units[unitName]; !ok {
			return domerrors.ErrNotFound
		}
		delete(subject.Units, unitName)
		subjects[subjectName] = subject
		return nil
	})
}
