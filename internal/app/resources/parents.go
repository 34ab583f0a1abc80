package resources

import (
	"context"
	"net/http"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

// ListParents fetches all parent records with their linked students
func ListParents(ctx context.Context, c *rest.Client) ([]models.Parent, error) {
	return rest.Do[[]models.Parent](ctx, c, http.MethodGet, "/api/v1/users/parents", nil, nil)
}

// CreateParent creates a parent and links the given students
func CreateParent(ctx context.Context, c *rest.Client, req dto.CreateParentRequest) (models.Parent, error) {
	return rest.Do[models.Parent](ctx, c, http.MethodPost, "/api/v1/users/parents", nil, req)
}

// UpdateParent partially updates a parent; a present StudentIDs field
// replaces the linked-student list wholesale
func UpdateParent(ctx context.Context, c *rest.Client, id string, req dto.UpdateParentRequest) (models.Parent, error) {
	return rest.Do[models.Parent](ctx, c, http.MethodPut, "/api/v1/users/parents/"+id, nil, req)
}
