package forms

import (
	"context"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/queries"
	"github.com/thanhvu/engcenter-console/internal/pkg/validation"
)

// CourseDraft is the editable shape behind the course modal
type CourseDraft struct {
	Name        string `validate:"required,min=2,max=150"`
	Description string
	Duration    string
	Level       string
	TeacherID   string `validate:"required"`
	Price       int64  `validate:"gte=0"`
	Active      bool
}

// NewCourseForm binds a course modal to the course mutations
func NewCourseForm(q *queries.CourseQueries) *Controller[CourseDraft] {
	defaults := CourseDraft{Active: true}

	return NewController(defaults, validateCourseDraft, func(ctx context.Context, targetID string, draft CourseDraft) error {
		req := dto.CourseRequest{
			Name:        draft.Name,
			Description: draft.Description,
			Duration:    draft.Duration,
			Level:       draft.Level,
			TeacherID:   draft.TeacherID,
			Price:       draft.Price,
			Active:      draft.Active,
		}

		var err error
		if targetID == "" {
			_, err = q.Create(ctx, req)
		} else {
			_, err = q.Update(ctx, targetID, req)
		}
		return err
	})
}

// CourseDraftFrom seeds an edit draft from an existing course
func CourseDraftFrom(c models.Course) CourseDraft {
	return CourseDraft{
		Name:        c.Name,
		Description: c.Description,
		Duration:    c.Duration,
		Level:       c.Level,
		TeacherID:   c.Teacher.ID,
		Price:       c.Price,
		Active:      c.Active,
	}
}

func validateCourseDraft(draft CourseDraft) error {
	return validation.Struct(draft)
}
