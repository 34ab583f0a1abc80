package dto

// CourseRequest creates or fully updates a course
type CourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Level       string `json:"level,omitempty"`
	TeacherID   string `json:"teacherId"`
	Price       int64  `json:"price"`
	Active      bool   `json:"active"`
}
