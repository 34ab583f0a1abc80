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

// UserQueries serves the users list (staff screens) and staff mutations
type UserQueries struct {
	cache  *querycache.Cache
	api    *rest.Client
	logger zerolog.Logger
}

// List fetches users with an optional role filter through the cache
func (q *UserQueries) List(ctx context.Context, filter dto.UserFilter) ([]models.User, error) {
	key := querycache.Key(TagUsers, filter)
	return querycache.Fetch(ctx, q.cache, key, func(ctx context.Context) ([]models.User, error) {
		return resources.ListUsers(ctx, q.api, filter)
	})
}

// CreateStaff creates a teacher or staff account. Teachers appear in
// course and class teacher pickers, so those views refetch too.
func (q *UserQueries) CreateStaff(ctx context.Context, req dto.CreateStaffRequest) (models.Staff, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Staff, error) {
		return resources.CreateStaff(ctx, q.api, req)
	}, TagUsers, TagCourses, TagClasses)
}

// Update partially updates a user record
func (q *UserQueries) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (models.User, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.User, error) {
		return resources.UpdateUser(ctx, q.api, id, req)
	}, TagUsers, TagCourses, TagClasses)
}
