package application

import (
	"context"
	"fmt"

	"github.com/codementorhq/codementor-go/internal/api"
	"github.com/codementorhq/codementor-go/internal/container"
	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// CatalogFilter selects and orders the course listing. The server does all
// filtering; the client never re-filters the response.
type CatalogFilter struct {
	Category   string
	Difficulty string
	SortBy     string
	Search     string
}

func (f CatalogFilter) withDefaults() CatalogFilter {
	if f.Category == "" {
		f.Category = "all"
	}
	if f.Difficulty == "" {
		f.Difficulty = "all"
	}
	if f.SortBy == "" {
		f.SortBy = "popularity"
	}
	return f
}

// Catalog drives the course listing and detail screens.
type Catalog struct {
	App *container.App

	// Fallback is shown in place of the catalog when a listing fetch
	// fails and the fallback policy is enabled. It is never used for an
	// empty (but successful) response; empty means empty.
	Fallback []entity.Course
}

func NewCatalog(app *container.App) *Catalog {
	c := &Catalog{App: app}
	if app.Cfg.CatalogFallbackEnabled {
		c.Fallback = PlaceholderCatalog()
	}
	return c
}

// List fetches the filtered listing and replaces the catalog verbatim.
// The error is returned even when the fallback was substituted, so the
// caller can tell a degraded view from a fresh one.
func (c *Catalog) List(ctx context.Context, filter CatalogFilter) error {
	filter = filter.withDefaults()
	var courses []entity.Course
	err := c.App.API.Get(ctx, "/courses", &courses,
		api.WithParam("category", filter.Category),
		api.WithParam("difficulty", filter.Difficulty),
		api.WithParam("sortBy", filter.SortBy),
		api.WithParam("search", filter.Search),
	)
	if err != nil {
		if len(c.Fallback) > 0 {
			c.App.Courses.SetCatalog(c.Fallback)
		}
		return fmt.Errorf("list courses: %w", err)
	}
	c.App.Courses.SetCatalog(courses)
	return nil
}

// Detail fetches one course and makes it the currently-viewed course.
func (c *Catalog) Detail(ctx context.Context, courseID string) (*entity.Course, error) {
	var course entity.Course
	if err := c.App.API.Get(ctx, "/courses/"+courseID, &course); err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	c.App.Courses.SetCurrent(&course)
	return &course, nil
}

// PlaceholderCatalog is the named degraded-mode listing for failed
// catalog fetches.
func PlaceholderCatalog() []entity.Course {
	return []entity.Course{
		{
			ID:          "placeholder-react",
			Title:       "React from Scratch",
			Description: "Placeholder entry shown while the catalog is unreachable.",
			Category:    "react",
			Difficulty:  entity.DifficultyBeginner,
			Price:       entity.Price{Monthly: 499, Quarterly: 1299, Annual: 4999},
		},
		{
			ID:          "placeholder-go",
			Title:       "Backend Engineering with Go",
			Description: "Placeholder entry shown while the catalog is unreachable.",
			Category:    "backend",
			Difficulty:  entity.DifficultyIntermediate,
			Price:       entity.Price{Monthly: 599, Quarterly: 1599, Annual: 5999},
		},
	}
}
