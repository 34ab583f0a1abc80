package dto

import "github.com/thanhvu/engcenter-console/internal/app/models"

// ClassRequest creates or fully updates a class
type ClassRequest struct {
	Name      string      `json:"name"`
	CourseID  string      `json:"courseId"`
	TeacherID string      `json:"teacherId"`
	Schedule  string      `json:"schedule"`
	StartDate models.Date `json:"startDate"`
	EndDate   models.Date `json:"endDate"`
	Capacity  int         `json:"capacity"`
	Active    bool        `json:"active"`
}
