package forms

import (
	"context"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/queries"
	"github.com/thanhvu/engcenter-console/internal/pkg/validation"
)

// ClassDraft is the editable shape behind the class modal. Dates are
// form-input strings in the calendar layout.
type ClassDraft struct {
	Name      string `validate:"required,min=2,max=150"`
	CourseID  string `validate:"required"`
	TeacherID string `validate:"required"`
	Schedule  string `validate:"required"`
	StartDate string `validate:"required"`
	EndDate   string `validate:"required"`
	Capacity  int    `validate:"gt=0"`
	Active    bool
}

// validateClassDraft layers the date-ordering rule on the tag checks
func validateClassDraft(draft ClassDraft) error {
	if err := validation.Struct(draft); err != nil {
		return err
	}
	return validation.DateOrder(draft.StartDate, draft.EndDate)
}

// NewClassForm binds a class modal to the class mutations
func NewClassForm(q *queries.ClassQueries) *Controller[ClassDraft] {
	defaults := ClassDraft{Capacity: 20, Active: true}

	return NewController(defaults, validateClassDraft, func(ctx context.Context, targetID string, draft ClassDraft) error {
		start, err := validation.ParseDate(draft.StartDate)
		if err != nil {
			return err
		}
		end, err := validation.ParseDate(draft.EndDate)
		if err != nil {
			return err
		}

		req := dto.ClassRequest{
			Name:      draft.Name,
			CourseID:  draft.CourseID,
			TeacherID: draft.TeacherID,
			Schedule:  draft.Schedule,
			StartDate: models.Date{Time: start},
			EndDate:   models.Date{Time: end},
			Capacity:  draft.Capacity,
			Active:    draft.Active,
		}

		if targetID == "" {
			_, err = q.Create(ctx, req)
		} else {
			_, err = q.Update(ctx, targetID, req)
		}
		return err
	})
}

// ClassDraftFrom seeds an edit draft from an existing class
func ClassDraftFrom(c models.Class) ClassDraft {
	return ClassDraft{
		Name:      c.Name,
		CourseID:  c.Course.ID,
		TeacherID: c.Teacher.ID,
		Schedule:  c.Schedule,
		StartDate: c.StartDate.Format(validation.DateLayout),
		EndDate:   c.EndDate.Format(validation.DateLayout),
		Capacity:  c.Capacity,
		Active:    c.Active,
	}
}
