package forms

import (
	"context"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/queries"
	"github.com/thanhvu/engcenter-console/internal/pkg/validation"
)

// ParentDraft is the editable shape behind the parent modal. StudentIDs
// is the link editor's full replacement list.
type ParentDraft struct {
	Name       string `validate:"required,min=2,max=100"`
	Email      string `validate:"required,email"`
	Phone      string `validate:"required,phone"`
	Relation   string `validate:"required"`
	Active     bool
	StudentIDs []string
}

// NewParentForm binds a parent modal to the parent mutations
func NewParentForm(q *queries.ParentQueries) *Controller[ParentDraft] {
	defaults := ParentDraft{Active: true}

	return NewController(defaults, validateParentDraft, func(ctx context.Context, targetID string, draft ParentDraft) error {
		if targetID == "" {
			_, err := q.Create(ctx, dto.CreateParentRequest{
				Name:       draft.Name,
				Email:      draft.Email,
				Phone:      draft.Phone,
				Relation:   draft.Relation,
				StudentIDs: draft.StudentIDs,
			})
			return err
		}

		_, err := q.Update(ctx, targetID, dto.UpdateParentRequest{
			Name:       &draft.Name,
			Email:      &draft.Email,
			Phone:      &draft.Phone,
			Relation:   &draft.Relation,
			Active:     &draft.Active,
			StudentIDs: &draft.StudentIDs,
		})
		return err
	})
}

// ParentDraftFrom seeds an edit draft from an existing parent
func ParentDraftFrom(p models.Parent) ParentDraft {
	ids := make([]string, len(p.Students))
	for i, s := range p.Students {
		ids[i] = s.ID
	}

	return ParentDraft{
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Relation:   p.Relation,
		Active:     p.Active,
		StudentIDs: ids,
	}
}

func validateParentDraft(draft ParentDraft) error {
	return validation.Struct(draft)
}
