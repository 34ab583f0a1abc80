package forms

import (
	"context"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/models/enums"
	"github.com/thanhvu/engcenter-console/internal/app/queries"
	"github.com/thanhvu/engcenter-console/internal/pkg/validation"
)

// Staff type discriminators, fixed by the creation endpoint
const (
	StaffTypeTeacher = "TEACHER"
	StaffTypeStaff   = "STAFF"
)

// StaffDraft is the editable shape behind the teacher/staff modal
type StaffDraft struct {
	FullName   string `validate:"required,min=2,max=100"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required,phone"`
	Type       string `validate:"required,oneof=TEACHER STAFF"`
	Position   string `validate:"required"`
	Department string
}

// NewStaffForm binds the teacher/staff modal to the user mutations
func NewStaffForm(q *queries.UserQueries) *Controller[StaffDraft] {
	defaults := StaffDraft{Type: StaffTypeTeacher}

	return NewController(defaults, validateStaffDraft, func(ctx context.Context, targetID string, draft StaffDraft) error {
		if targetID == "" {
			_, err := q.CreateStaff(ctx, dto.CreateStaffRequest{
				FullName:   draft.FullName,
				Email:      draft.Email,
				Phone:      draft.Phone,
				Type:       draft.Type,
				Position:   draft.Position,
				Department: draft.Department,
			})
			return err
		}

		_, err := q.Update(ctx, targetID, dto.UpdateUserRequest{
			FullName:   &draft.FullName,
			Email:      &draft.Email,
			Phone:      &draft.Phone,
			Position:   &draft.Position,
			Department: &draft.Department,
		})
		return err
	})
}

// StaffDraftFrom seeds an edit draft from an existing staff record. The
// type discriminator is fixed at creation, so it is derived from the
// record's primary role rather than edited.
func StaffDraftFrom(s models.Staff) StaffDraft {
	staffType := StaffTypeStaff
	if s.PrimaryRole() == enums.RoleTeacher {
		staffType = StaffTypeTeacher
	}
	return StaffDraft{
		FullName:   s.FullName,
		Email:      s.Email,
		Phone:      s.Phone,
		Type:       staffType,
		Position:   s.Position,
		Department: s.Department,
	}
}

func validateStaffDraft(draft StaffDraft) error {
	return validation.Struct(draft)
}
