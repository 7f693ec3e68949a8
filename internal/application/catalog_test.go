package application

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

func TestListSendsFilterParamsAndReplacesVerbatim(t *testing.T) {
	var gotQuery url.Values
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[{"id":"c1","title":"React from Scratch"},{"id":"c2","title":"Go Deep"}]`))
	}))
	app.Courses.SetCatalog([]entity.Course{{ID: "stale"}})

	catalog := NewCatalog(app.App)
	err := catalog.List(context.Background(), CatalogFilter{Category: "react", Difficulty: "beginner"})
	require.NoError(t, err)

	assert.Equal(t, "react", gotQuery.Get("category"))
	assert.Equal(t, "beginner", gotQuery.Get("difficulty"))
	assert.Equal(t, "popularity", gotQuery.Get("sortBy"), "omitted sort falls back to popularity")

	got := app.Courses.State().Catalog
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
}

func TestListDefaultsFilterToAll(t *testing.T) {
	var gotQuery url.Values
	app := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))

	require.NoError(t, NewCatalog(app.App).List(context.Background(), CatalogFilter{}))
	assert.Equal(t, "all", gotQuery.Get("category"))
	assert.Equal(t, "all", gotQuery.Get("difficulty"))
}

func TestListEmptyResponseMeansEmpty(t *testing.T) {
	app := newTestApp(t, jsonHandler(`[]`))
	app.Cfg.CatalogFallbackEnabled = true
	app.Courses.SetCatalog([]entity.Course{{ID: "stale"}})

	catalog := NewCatalog(app.App)
	require.NoError(t, catalog.List(context.Background(), CatalogFilter{}))
	assert.Empty(t, app.Courses.State().Catalog, "a successful empty listing is not replaced by placeholders")
}

func TestListFallbackOnlyOnError(t *testing.T) {
	app := newTestApp(t, failHandler(http.StatusInternalServerError))
	app.Cfg.CatalogFallbackEnabled = true

	catalog := NewCatalog(app.App)
	err := catalog.List(context.Background(), CatalogFilter{})
	require.Error(t, err, "the error is surfaced even with the fallback in place")
	assert.Equal(t, PlaceholderCatalog(), app.Courses.State().Catalog)
}

func TestListErrorWithoutFallbackLeavesCatalogAlone(t *testing.T) {
	app := newTestApp(t, failHandler(http.StatusInternalServerError))
	app.Courses.SetCatalog([]entity.Course{{ID: "kept"}})

	catalog := NewCatalog(app.App)
	require.Error(t, catalog.List(context.Background(), CatalogFilter{}))
	require.Len(t, app.Courses.State().Catalog, 1)
	assert.Equal(t, "kept", app.Courses.State().Catalog[0].ID)
}

func TestDetailSetsCurrentCourse(t *testing.T) {
	app := newTestApp(t, jsonHandler(`{"id":"c1","title":"React from Scratch"}`))

	course, err := NewCatalog(app.App).Detail(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "React from Scratch", course.Title)
	require.NotNil(t, app.Courses.Current())
	assert.Equal(t, "c1", app.Courses.Current().ID)
}
