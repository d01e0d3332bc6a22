// store/store.go
package store

import (
	"fmt"
	"slices"

	"github.com/ViniZap4/nurse-notes/domain"
)

// Store holds a fixed, ordered set of notes and an id index over them.
// It is never modified after New returns, so it is safe for concurrent use
// without locking.
type Store struct {
	notes []domain.Note
	byID  map[string]int
}

// New copies notes into a Store, keeping their order. Ids must be unique
// and non-empty. A nil action item list is stored as an empty one.
func New(notes []domain.Note) (*Store, error) {
	s := &Store{
		notes: make([]domain.Note, 0, len(notes)),
		byID:  make(map[string]int, len(notes)),
	}

	for _, note := range notes {
		if note.ID == "" {
			return nil, fmt.Errorf("note at position %d has no id", len(s.notes))
		}
		if _, dup := s.byID[note.ID]; dup {
			return nil, fmt.Errorf("duplicate note id: %s", note.ID)
		}

		note = clone(note)
		if note.ActionItems == nil {
			note.ActionItems = []string{}
		}

		s.byID[note.ID] = len(s.notes)
		s.notes = append(s.notes, note)
	}

	return s, nil
}

// List returns every note in construction order.
func (s *Store) List() []domain.Note {
	out := make([]domain.Note, len(s.notes))
	for i, note := range s.notes {
		out[i] = clone(note)
	}
	return out
}

// Get looks a note up by exact id. The bool is false when no note matches.
func (s *Store) Get(id string) (domain.Note, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Note{}, false
	}
	return clone(s.notes[i]), true
}

// Len reports how many notes the store holds.
func (s *Store) Len() int {
	return len(s.notes)
}

// clone detaches the reference fields of a note so callers cannot reach
// into the store's copy.
func clone(note domain.Note) domain.Note {
	if note.PatientID != nil {
		note.PatientID = domain.Ref(*note.PatientID)
	}
	if note.AuthorID != nil {
		note.AuthorID = domain.Ref(*note.AuthorID)
	}
	if note.ActionItems != nil {
		note.ActionItems = slices.Clone(note.ActionItems)
	}
	return note
}
