package forms

import (
	"context"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/queries"
	"github.com/thanhvu/engcenter-console/internal/pkg/validation"
)

// StudentDraft is the editable shape behind the student modal
type StudentDraft struct {
	FullName string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,phone"`
	Active   bool
}

// NewStudentForm binds a student modal to the student mutations
func NewStudentForm(q *queries.StudentQueries) *Controller[StudentDraft] {
	defaults := StudentDraft{Active: true}

	return NewController(defaults, validateStudentDraft, func(ctx context.Context, targetID string, draft StudentDraft) error {
		if targetID == "" {
			_, err := q.Create(ctx, dto.CreateStudentRequest{
				FullName: draft.FullName,
				Email:    draft.Email,
				Phone:    draft.Phone,
			})
			return err
		}

		_, err := q.Update(ctx, targetID, dto.UpdateUserRequest{
			FullName: &draft.FullName,
			Email:    &draft.Email,
			Phone:    &draft.Phone,
			Active:   &draft.Active,
		})
		return err
	})
}

// StudentDraftFrom seeds an edit draft from an existing student
func StudentDraftFrom(s models.Student) StudentDraft {
	return StudentDraft{
		FullName: s.FullName,
		Email:    s.Email,
		Phone:    s.Phone,
		Active:   s.Active,
	}
}

func validateStudentDraft(draft StudentDraft) error {
	return validation.Struct(draft)
}
