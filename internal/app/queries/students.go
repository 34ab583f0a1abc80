package queries

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/app/resources"
	"github.com/thanhvu/engcenter-console/internal/pkg/querycache"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

// StudentQueries serves the student list, detail and available-pool views
type StudentQueries struct {
	cache  *querycache.Cache
	api    *rest.Client
	logger zerolog.Logger
}

// List fetches students for the given filter through the cache
func (q *StudentQueries) List(ctx context.Context, filter dto.StudentFilter) ([]models.Student, error) {
	key := querycache.Key(TagStudents, filter)
	return querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) ([]models.Student, error) {
		return resources.ListStudents(ctx, q.api, filter)
	})
}

// Detail fetches one student. An empty id short-circuits to an
// inactive result without touching cache or network; the second return
// reports whether the query was active.
func (q *StudentQueries) Detail(ctx context.Context, id string) (models.Student, bool, error) {
	if id == "" {
		return models.Student{}, false, nil
	}

	key := querycache.Key(TagStudentDetail, id)
	student, err := querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) (models.Student, error) {
		return resources.GetStudent(ctx, q.api, id)
	})
	return student, true, err
}

// Available fetches the pool of students with no linked parent
func (q *StudentQueries) Available(ctx context.Context) ([]models.LinkedStudent, error) {
	return querycache.Fetch(ctx, q.cache, TagAvailableStudents, func(ctx context.Context) ([]models.LinkedStudent, error) {
		return resources.AvailableStudents(ctx, q.api)
	})
}

// Create creates a student. New students start unlinked, so the
// available pool refetches along with the student views.
func (q *StudentQueries) Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Student, error) {
		return resources.CreateStudent(ctx, q.api, req)
	}, TagStudents, TagAvailableStudents, TagUsers)
}

// Update partially updates a student's user record
func (q *StudentQueries) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (models.User, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.User, error) {
		return resources.UpdateUser(ctx, q.api, id, req)
	}, TagStudents, TagStudentDetail, TagAvailableStudents, TagUsers)
}

// Deactivate soft-deletes a student by clearing the active flag
func (q *StudentQueries) Deactivate(ctx context.Context, id string) (models.User, error) {
	inactive := false
	return q.Update(ctx, id, dto.UpdateUserRequest{Active: &inactive})
}
