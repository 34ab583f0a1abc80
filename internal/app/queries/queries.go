// Package queries binds resource access functions to the session's
// query cache. Each entity gets a typed module: reads are keyed by
// entity tag plus parameters, writes declare the key prefixes they
// invalidate, including the cross-entity ones.
package queries

import (
	"github.com/rs/zerolog"

	"github.com/thanhvu/engcenter-console/internal/pkg/querycache"
	"github.com/thanhvu/engcenter-console/internal/pkg/rest"
)

// Cache key tags, one per entity view. These are invalidation prefixes:
// every key opens with its tag.
const (
	TagUsers             = "users"
	TagStudents          = "students"
	TagStudentDetail     = "studentDetail"
	TagAvailableStudents = "availableStudents"
	TagParents           = "parents"
	TagCourses           = "courses"
	TagCourseDetail      = "courseDetail"
	TagClasses           = "classes"
	TagClassesByCourse   = "classesByCourse"
)

// Registry groups the per-entity query modules behind one cache
type Registry struct {
	Users    *UserQueries
	Students *StudentQueries
	Parents  *ParentQueries
	Courses  *CourseQueries
	Classes  *ClassQueries
}

// NewRegistry wires every entity module to the shared cache and client
func NewRegistry(cache *querycache.Cache, api *rest.Client, logger zerolog.Logger) *Registry {
	return &Registry{
		Users:    &UserQueries{cache: cache, api: api, logger: logger},
		Students: &StudentQueries{cache: cache, api: api, logger: logger},
		Parents:  &ParentQueries{cache: cache, api: api, logger: logger},
		Courses:  &CourseQueries{cache: cache, api: api, logger: logger},
		Classes:  &ClassQueries{cache: cache, api: api, logger: logger},
	}
}
