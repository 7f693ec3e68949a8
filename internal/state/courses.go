package state

import (
	"sync"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// CoursesState caches the catalog, the enrolled subset and the course
// currently being viewed.
type CoursesState struct {
	Catalog  []entity.Course
	Enrolled []entity.Course
	Current  *entity.Course
}

// ReduceSetCatalog replaces the catalog verbatim with the server response.
func ReduceSetCatalog(s CoursesState, courses []entity.Course) CoursesState {
	s.Catalog = courses
	return s
}

// ReduceSetEnrolled replaces the enrolled-courses list.
func ReduceSetEnrolled(s CoursesState, courses []entity.Course) CoursesState {
	s.Enrolled = courses
	return s
}

// ReduceSetCurrent replaces the currently-viewed course.
func ReduceSetCurrent(s CoursesState, course *entity.Course) CoursesState {
	s.Current = course
	return s
}

// ReduceProgress rewrites progress for one course, only within the
// enrolled list. Unknown ids are a no-op.
func ReduceProgress(s CoursesState, courseID string, progress int) CoursesState {
	updated := make([]entity.Course, len(s.Enrolled))
	copy(updated, s.Enrolled)
	for i := range updated {
		if updated[i].ID == courseID {
			updated[i].Progress = progress
		}
	}
	s.Enrolled = updated
	return s
}

// Courses owns the course state.
type Courses struct {
	mu    sync.Mutex
	state CoursesState
}

func NewCourses() *Courses { return &Courses{} }

// State returns a snapshot of the course state.
func (c *Courses) State() CoursesState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the currently-viewed course, or nil.
func (c *Courses) Current() *entity.Course {
	return c.State().Current
}

// SetCatalog replaces the catalog with the server response.
func (c *Courses) SetCatalog(courses []entity.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ReduceSetCatalog(c.state, courses)
}

// SetEnrolled replaces the enrolled list.
func (c *Courses) SetEnrolled(courses []entity.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ReduceSetEnrolled(c.state, courses)
}

// SetCurrent replaces the currently-viewed course.
func (c *Courses) SetCurrent(course *entity.Course) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ReduceSetCurrent(c.state, course)
}

// UpdateProgress rewrites progress for one enrolled course.
func (c *Courses) UpdateProgress(courseID string, progress int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ReduceProgress(c.state, courseID, progress)
}
