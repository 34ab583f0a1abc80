package cascade

import (
	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/pkg/apperrors"
)

// LinkEditor is the working set behind the parent form's linked-students
// relation: an ordered multi-select seeded from the entity's current
// links, mutated by explicit add/remove against the available pool, and
// submitted wholesale as a full replacement list.
type LinkEditor struct {
	linked    []models.LinkedStudent
	available []models.LinkedStudent
}

// NewLinkEditor seeds the editor. current are the parent's existing
// links (empty for a create form); available is the global pool of
// students with no linked parent.
func NewLinkEditor(current, available []models.LinkedStudent) *LinkEditor {
	e := &LinkEditor{
		linked:    make([]models.LinkedStudent, 0, len(current)),
		available: make([]models.LinkedStudent, 0, len(available)),
	}

	seen := make(map[string]bool, len(current))
	for _, s := range current {
		// Linked ids are unique within a parent
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		e.linked = append(e.linked, s)
	}

	for _, s := range available {
		if seen[s.ID] {
			continue
		}
		e.available = append(e.available, s)
	}

	return e
}

// Add moves a student from the available pool into the working set
func (e *LinkEditor) Add(id string) error {
	for _, s := range e.linked {
		if s.ID == id {
			return apperrors.ErrAlreadyLinked
		}
	}

	for i, s := range e.available {
		if s.ID == id {
			e.linked = append(e.linked, s)
			e.available = append(e.available[:i], e.available[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotAvailable
}

// Remove moves a student from the working set back into the pool
func (e *LinkEditor) Remove(id string) error {
	for i, s := range e.linked {
		if s.ID == id {
			e.available = append(e.available, s)
			e.linked = append(e.linked[:i], e.linked[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotLinked
}

// Linked returns the ordered working set
func (e *LinkEditor) Linked() []models.LinkedStudent {
	out := make([]models.LinkedStudent, len(e.linked))
	copy(out, e.linked)
	return out
}

// Available returns the remaining candidate pool
func (e *LinkEditor) Available() []models.LinkedStudent {
	out := make([]models.LinkedStudent, len(e.available))
	copy(out, e.available)
	return out
}

// StudentIDs returns the full replacement list submitted on save
func (e *LinkEditor) StudentIDs() []string {
	ids := make([]string, len(e.linked))
	for i, s := range e.linked {
		ids[i] = s.ID
	}
	return ids
}
