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

// ListUsers fetches users, optionally filtered by role name
func ListUsers(ctx context.Context, c *rest.Client, filter dto.UserFilter) ([]models.User, error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}
	return rest.Do[[]models.User](ctx, c, http.MethodGet, "/api/v1/users/", query, nil)
}

// UpdateUser partially updates a user record
func UpdateUser(ctx context.Context, c *rest.Client, id string, req dto.UpdateUserRequest) (models.User, error) {
	return rest.Do[models.User](ctx, c, http.MethodPut, "/api/v1/users/"+id, nil, req)
}

// CreateStudent creates a student account
func CreateStudent(ctx context.Context, c *rest.Client, req dto.CreateStudentRequest) (models.Student, error) {
	return rest.Do[models.Student](ctx, c, http.MethodPost, "/api/v1/users/student", nil, req)
}

// CreateStaff creates a teacher or staff account; req.Type discriminates
func CreateStaff(ctx context.Context, c *rest.Client, req dto.CreateStaffRequest) (models.Staff, error) {
	return rest.Do[models.Staff](ctx, c, http.MethodPost, "/api/v1/users/staff", nil, req)
}

// ListStudents fetches students with optional course/class/active filters
func ListStudents(ctx context.Context, c *rest.Client, filter dto.StudentFilter) ([]models.Student, error) {
	query := url.Values{}
	if filter.CourseID != "" {
		query.Set("courseId", filter.CourseID)
	}
	if filter.ClassID != "" {
		query.Set("classId", filter.ClassID)
	}
	if filter.Active != nil {
		query.Set("active", strconv.FormatBool(*filter.Active))
	}
	return rest.Do[[]models.Student](ctx, c, http.MethodGet, "/api/v1/users/students", query, nil)
}

// GetStudent fetches one student with enrollment history
func GetStudent(ctx context.Context, c *rest.Client, id string) (models.Student, error) {
	return rest.Do[models.Student](ctx, c, http.MethodGet, "/api/v1/users/students/"+id, nil, nil)
}

// AvailableStudents fetches students with no linked parent, the
// candidate pool for the parent link editor
func AvailableStudents(ctx context.Context, c *rest.Client) ([]models.LinkedStudent, error) {
	return rest.Do[[]models.LinkedStudent](ctx, c, http.MethodGet, "/api/v1/users/student-available", nil, nil)
}
