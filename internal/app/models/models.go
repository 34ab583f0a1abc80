// Package models defines the entities the console works with, as the
// backend serves them. These are client-side views, not a database schema.
package models

import (
	"strings"
	"time"

	"github.com/thanhvu/engcenter-console/internal/app/models/enums"
)

// Date is a calendar day without a time component, serialized as "2006-01-02"
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// Role is a named permission set assigned to a user
type Role struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// User is the identity record shared by students, parents and staff
type User struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FullName  string    `json:"fullName"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	Roles     []Role    `json:"roles"`
}

// PrimaryRole resolves the user's first assigned role onto the closed role set
func (u User) PrimaryRole() enums.RoleType {
	if len(u.Roles) == 0 {
		return enums.RoleUnknown
	}
	return enums.ParseRole(u.Roles[0].Name)
}

// Enrollment is a student's membership in one class, as listed on the
// student detail screen
type Enrollment struct {
	CourseName string                 `json:"courseName"`
	ClassName  string                 `json:"className"`
	Status     enums.EnrollmentStatus `json:"status"`
}

// ParentRef is the student-side view of the linked parent
type ParentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Student is a User specialization carrying enrollment history and an
// optional parent link
type Student struct {
	User
	Parent      *ParentRef   `json:"parent,omitempty"`
	Enrollments []Enrollment `json:"enrollments"`
}

// LinkedStudent is the parent-side view of one linked student. The
// relation is always carried as a single list of these records; id and
// display fields never live in separate parallel arrays.
type LinkedStudent struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Parent is a guardian record with its ordered list of linked students
type Parent struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Relation string          `json:"relation"`
	Active   bool            `json:"active"`
	Students []LinkedStudent `json:"students"`
}

// TeacherRef is a lightweight reference to the teacher assigned to a
// course or class
type TeacherRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Course is a curriculum offering
type Course struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Level       string     `json:"level,omitempty"`
	Teacher     TeacherRef `json:"teacher"`
	Price       int64      `json:"price"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CourseRef is the class-side view of the owning course
type CourseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Class is a scheduled instance of a course
type Class struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Course    CourseRef  `json:"course"`
	Teacher   TeacherRef `json:"teacher"`
	Schedule  string     `json:"schedule"`
	StartDate Date       `json:"startDate"`
	EndDate   Date       `json:"endDate"`
	Active    bool       `json:"active"`
	Enrolled  int        `json:"enrolled"`
	Capacity  int        `json:"capacity"`
}

// Staff is a User specialization for teachers and administrative staff
type Staff struct {
	User
	Position   string `json:"position"`
	Department string `json:"department"`
}
