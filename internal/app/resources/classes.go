package resources

import (
	"context"
	"net/http"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

// ListClasses fetches one page of classes
func ListClasses(ctx context.Context, c *rest.Client, page dto.PageQuery) (dto.Page[models.Class], error) {
	return rest.Do[dto.Page[models.Class]](ctx, c, http.MethodGet, "/api/v1/classes", pageQuery(page), nil)
}

// CreateClass creates a class
func CreateClass(ctx context.Context, c *rest.Client, req dto.ClassRequest) (models.Class, error) {
	return rest.Do[models.Class](ctx, c, http.MethodPost, "/api/v1/classes", nil, req)
}

// UpdateClass fully updates a class
func UpdateClass(ctx context.Context, c *rest.Client, id string, req dto.ClassRequest) (models.Class, error) {
	return rest.Do[models.Class](ctx, c, http.MethodPut, "/api/v1/classes/"+id, nil, req)
}

// DeleteClass removes a class
func DeleteClass(ctx context.Context, c *rest.Client, id string) error {
	return rest.DoVoid(ctx, c, http.MethodDelete, "/api/v1/classes/"+id, nil, nil)
}

// ClassesByCourse fetches the classes belonging to one course, the
// data source of the course to class cascade
func ClassesByCourse(ctx context.Context, c *rest.Client, courseID string) ([]models.Class, error) {
	return rest.Do[[]models.Class](ctx, c, http.MethodGet, "/api/v1/classes-by-course/"+courseID, nil, nil)
}
