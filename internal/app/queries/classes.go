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

// ClassQueries serves the paged class list, the by-course view and
// class mutations
type ClassQueries struct {
	cache  *querycache.Cache
	api    *rest.Client
	logger zerolog.Logger
}

// List fetches one page of classes through the cache
func (q *ClassQueries) List(ctx context.Context, page dto.PageQuery) (dto.Page[models.Class], error) {
	key := querycache.Key(TagClasses, page.Normalize())
	return querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) (dto.Page[models.Class], error) {
		return resources.ListClasses(ctx, q.api, page)
	})
}

// ByCourse fetches the classes of one course, keyed by the course id.
// An empty course id is an inactive dependent query: no fetch, no cache.
func (q *ClassQueries) ByCourse(ctx context.Context, courseID string) ([]models.Class, bool, error) {
	if courseID == "" {
		return nil, false, nil
	}

	key := querycache.Key(TagClassesByCourse, courseID)
	classes, err := querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) ([]models.Class, error) {
		return resources.ClassesByCourse(ctx, q.api, courseID)
	})
	return classes, true, err
}

// Create creates a class; the owning course's class list refetches
func (q *ClassQueries) Create(ctx context.Context, req dto.ClassRequest) (models.Class, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Class, error) {
		return resources.CreateClass(ctx, q.api, req)
	}, TagClasses, TagClassesByCourse)
}

// Update fully updates a class
func (q *ClassQueries) Update(ctx context.Context, id string, req dto.ClassRequest) (models.Class, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Class, error) {
		return resources.UpdateClass(ctx, q.api, id, req)
	}, TagClasses, TagClassesByCourse)
}

// Delete removes a class
func (q *ClassQueries) Delete(ctx context.Context, id string) error {
	_, err := querycache.Mutate(ctx, q.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, resources.DeleteClass(ctx, q.api, id)
	}, TagClasses, TagClassesByCourse, TagStudents, TagStudentDetail)
	return err
}
