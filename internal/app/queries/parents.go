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

// ParentQueries serves the parents list and its link mutations
type ParentQueries struct {
	cache  *querycache.Cache
	api    *rest.Client
	logger zerolog.Logger
}

// List fetches all parents with their linked students
func (q *ParentQueries) List(ctx context.Context) ([]models.Parent, error) {
	return querycache.Fetch(ctx, q.cache, TagParents, func(ctx context.Context) ([]models.Parent, error) {
		return resources.ListParents(ctx, q.api)
	})
}

// Create creates a parent. Linking students changes which students are
// eligible for linking elsewhere, so the available pool is invalidated
// along with the parent views.
func (q *ParentQueries) Create(ctx context.Context, req dto.CreateParentRequest) (models.Parent, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Parent, error) {
		return resources.CreateParent(ctx, q.api, req)
	}, TagParents, TagAvailableStudents, TagStudents, TagStudentDetail)
}

// Update partially updates a parent, including wholesale link replacement
func (q *ParentQueries) Update(ctx context.Context, id string, req dto.UpdateParentRequest) (models.Parent, error) {
	return querycache.Mutate(ctx, q.cache, func(ctx context.Context) (models.Parent, error) {
		return resources.UpdateParent(ctx, q.api, id, req)
	}, TagParents, TagAvailableStudents, TagStudents, TagStudentDetail)
}

// Deactivate soft-deletes a parent by clearing the active flag
func (q *ParentQueries) Deactivate(ctx context.Context, id string) (models.Parent, error) {
	inactive := false
	return q.Update(ctx, id, dto.UpdateParentRequest{Active: &inactive})
}
