package dto

// UserFilter selects a subset of the users list
type UserFilter struct {
	Role string `json:"role,omitempty"`
}

// CreateStudentRequest creates a student account
type CreateStudentRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateStaffRequest creates a teacher or administrative staff account.
// Type discriminates the two at creation time.
type CreateStaffRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Type       string `json:"type"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
// Position and Department only apply to staff records.
type UpdateUserRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Active     *bool   `json:"active,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
}

// StudentFilter selects a subset of the students list
type StudentFilter struct {
	CourseID string `json:"courseId,omitempty"`
	ClassID  string `json:"classId,omitempty"`
	Active   *bool  `json:"active,omitempty"`
}
