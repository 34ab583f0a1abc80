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

// CourseQueries serves the paged course list and course mutations
type CourseQueries struct {
	cache  *querycache.Cache
	api    *rest.Client
	logger zerolog.Logger
}

// List fetches one page of courses through the cache
func (q *CourseQueries) List(ctx context.Context, page dto.PageQuery) (dto.Page[models.Course], error) {
	key := querycache.Key(TagCourses, page.Normalize())
	return querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) (dto.Page[models.Course], error) {
		return resources.ListCourses(ctx, q.api, page)
	})
}

// Detail fetches one course; an empty id short-circuits to inactive
func (q *CourseQueries) Detail(ctx context.Context, id string) (models.Course, bool, error) {
	if id == "" {
		return models.Course{}, false, nil
	}

	key := querycache.Key(TagCourseDetail, id)
	course, err := querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) (models.Course, error) {
		return resources.GetCourse(ctx, q.api, id)
	})
	return course, true, err
}

// Create creates a course
func (q *CourseQueries) Create(ctx context.Context, req dto.CourseRequest) (models.Course, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Course, error) {
		return resources.CreateCourse(ctx, q.api, req)
	}, TagCourses, TagCourseDetail)
}

// Update fully updates a course. Classes embed the course name, so
// class views refetch as well.
func (q *CourseQueries) Update(ctx context.Context, id string, req dto.CourseRequest) (models.Course, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Course, error) {
		return resources.UpdateCourse(ctx, q.api, id, req)
	}, TagCourses, TagCourseDetail, TagClasses, TagClassesByCourse)
}

// Delete removes a course and every view derived from it
func (q *CourseQueries) Delete(ctx context.Context, id string) error {
	_, err := querycache.Mutate(ctx, q.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, resources.DeleteCourse(ctx, q.api, id)
	}, TagCourses, TagCourseDetail, TagClasses, TagClassesByCourse)
	return err
}
