package resources

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thanhvu/engcenter-console/internal/app/models"
	"github.com/thanhvu/engcenter-console/internal/app/models/dto"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

func pageQuery(page dto.PageQuery) url.Values {
	page = page.Normalize()
	query := url.Values{}
	query.Set("page", strconv.Itoa(page.Page))
	query.Set("size", strconv.Itoa(page.Size))
	return query
}

// ListCourses fetches one page of courses
func ListCourses(ctx context.Context, c *rest.Client, page dto.PageQuery) (dto.Page[models.Course], error) {
	return rest.Do[dto.Page[models.Course]](ctx, c, http.MethodGet, "/api/v1/courses/", pageQuery(page), nil)
}

// GetCourse fetches one course
func GetCourse(ctx context.Context, c *rest.Client, id string) (models.Course, error) {
	return rest.Do[models.Course](ctx, c, http.MethodGet, "/api/v1/courses/"+id, nil, nil)
}

// CreateCourse creates a course
func CreateCourse(ctx context.Context, c *rest.Client, req dto.CourseRequest) (models.Course, error) {
	return rest.Do[models.Course](ctx, c, http.MethodPost, "/api/v1/courses/", nil, req)
}

// UpdateCourse fully updates a course
func UpdateCourse(ctx context.Context, c *rest.Client, id string, req dto.CourseRequest) (models.Course, error) {
	return rest.Do[models.Course](ctx, c, http.MethodPut, "/api/v1/courses/"+id, nil, req)
}

// DeleteCourse removes a course
func DeleteCourse(ctx context.Context, c *rest.Client, id string) error {
	return rest.DoVoid(ctx, c, http.MethodDelete, "/api/v1/courses/"+id, nil, nil)
}
