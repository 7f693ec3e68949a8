package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
	"github.com/codementorhq/codementor-go/internal/state"
)

var ErrNoCourseLoaded = errors.New("no course loaded")

// Player drives the lesson playback screen. Lesson completion is applied
// optimistically and reverted when the confirmation call fails.
type Player struct {
	App *container.App
}

func NewPlayer(app *container.App) *Player {
	return &Player{App: app}
}

// Load fetches the course for playback and makes it current.
func (p *Player) Load(ctx context.Context, courseID string) (*entity.Course, error) {
	var course entity.Course
	if err := p.App.API.Get(ctx, "/courses/"+courseID, &course); err != nil {
		return nil, fmt.Errorf("load course: %w", err)
	}
	p.App.Courses.SetCurrent(&course)
	return &course, nil
}

// CompleteLesson marks a lesson complete locally, confirms with the
// server, and restores the prior snapshot when the confirmation fails.
func (p *Player) CompleteLesson(ctx context.Context, courseID, lessonID string) error {
	course := p.App.Courses.Current()
	if course == nil || course.ID != courseID {
		return ErrNoCourseLoaded
	}

	prev := cloneCourse(course)
	next := cloneCourse(course)
	found := false
	for mi := range next.Modules {
		for li := range next.Modules[mi].Lessons {
			if next.Modules[mi].Lessons[li].ID == lessonID {
				next.Modules[mi].Lessons[li].Completed = true
				found = true
			}
		}
	}
	if !found {
		return fmt.Errorf("lesson %q not in course %q", lessonID, courseID)
	}
	next.Progress = progressOf(next)

	cmd := state.Command{
		Apply: func() {
			p.App.Courses.SetCurrent(next)
			p.App.Courses.UpdateProgress(courseID, next.Progress)
		},
		Revert: func() {
			p.App.Courses.SetCurrent(prev)
			p.App.Courses.UpdateProgress(courseID, prev.Progress)
		},
		Call: func(ctx context.Context) error {
			return p.App.API.Post(ctx, "/courses/"+courseID+"/lessons/"+lessonID+"/complete", nil, nil)
		},
	}
	if err := cmd.Run(ctx); err != nil {
		p.App.Logger.WithError(err).WithFields(logrus.Fields{
			"command_id": cmd.ID,
			"lesson_id":  lessonID,
		}).Warn("lesson completion reverted")
		return fmt.Errorf("complete lesson: %w", err)
	}
	return nil
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// SaveNotes stores the viewer's notes for a lesson.
func (p *Player) SaveNotes(ctx context.Context, courseID, lessonID, notes string) error {
	return p.App.API.Post(ctx, "/courses/"+courseID+"/lessons/"+lessonID+"/notes", notesRequest{Notes: notes}, nil)
}

// progressOf computes completion as a percentage of all lessons.
func progressOf(c *entity.Course) int {
	total := c.LessonCount()
	if total == 0 {
		return 0
	}
	return c.CompletedCount() * 100 / total
}

func cloneCourse(c *entity.Course) *entity.Course {
	clone := *c
	clone.Modules = make([]entity.Module, len(c.Modules))
	copy(clone.Modules, c.Modules)
	for i := range clone.Modules {
		lessons := make([]entity.Lesson, len(clone.Modules[i].Lessons))
		copy(lessons, clone.Modules[i].Lessons)
		clone.Modules[i].Lessons = lessons
	}
	return &clone
}
