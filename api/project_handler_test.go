package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/murshedkoli/portfolio-backend/models"
)

func TestProjectListFiltersInactive(t *testing.T) {
	srv, db := newTestServer(t)
	token := loginToken(t, srv)

	for _, p := range []models.Project{
		{Title: "visible", Description: "d", Status: "active"},
		{Title: "archived", Description: "d", Status: "archived"},
		{Title: "draft", Description: "d", Status: "draft"},
	} {
		res := doJSON(t, srv, http.MethodPost, "/projects", token, p)
		res.Body.Close()
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	// all three rows exist in storage
	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	require.EqualValues(t, 3, count)

	res := doJSON(t, srv, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	projects := decodeBody[[]models.Project](t, res)

	require.Len(t, projects, 1)
	assert.Equal(t, "visible", projects[0].Title)
}

func TestProjectListOrdering(t *testing.T) {
	srv, db := newTestServer(t)

	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// featured DESC, then order ASC, then createdAt DESC
	rows := []models.Project{
		{Title: "featured-second", Description: "d", Status: "active", Featured: true, Order: 2, CreatedAt: t1},
		{Title: "featured-first", Description: "d", Status: "active", Featured: true, Order: 1, CreatedAt: t2},
		{Title: "plain", Description: "d", Status: "active", Featured: false, Order: 0, CreatedAt: t3},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	res := doJSON(t, srv, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	projects := decodeBody[[]models.Project](t, res)

	require.Len(t, projects, 3)
	assert.Equal(t, "featured-first", projects[0].Title)
	assert.Equal(t, "featured-second", projects[1].Title)
	assert.Equal(t, "plain", projects[2].Title)
}

func TestCreateProjectDefaults(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/projects", token, map[string]any{
		"title":       "minimal",
		"description": "just the required bits",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.Project](t, res)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.Featured)
	assert.Equal(t, 0, created.Order)
	assert.Equal(t, "active", created.Status)
	assert.NotNil(t, created.Technologies)
}

func TestUpdateProjectFullOverwrite(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/projects", token, models.Project{
		Title:        "original",
		Description:  "desc",
		GithubURL:    "https://github.com/murshedkoli/original",
		Technologies: datatypes.JSONSlice[string]{"React"},
		Featured:     true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.Project](t, res)

	// The update omits githubUrl and featured: full overwrite blanks them.
	res = doJSON(t, srv, http.MethodPut, "/projects/"+created.ID.String(), token, map[string]any{
		"title":       "renamed",
		"description": "desc",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	updated := decodeBody[models.Project](t, res)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Title)
	assert.Empty(t, updated.GithubURL)
	assert.False(t, updated.Featured)
}

func TestUpdateProjectIdempotent(t *testing.T) {
	srv, db := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/projects", token, models.Project{
		Title:       "stable",
		Description: "desc",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.Project](t, res)

	payload := map[string]any{
		"title":        "stable",
		"description":  "desc",
		"technologies": []string{"Go", "SQLite"},
		"order":        3,
	}

	for range 2 {
		res = doJSON(t, srv, http.MethodPut, "/projects/"+created.ID.String(), token, payload)
		require.Equal(t, http.StatusOK, res.StatusCode)
		res.Body.Close()
	}

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "stable", stored.Title)
	assert.Equal(t, 3, stored.Order)
	assert.Equal(t, []string{"Go", "SQLite"}, []string(stored.Technologies))
	assert.WithinDuration(t, created.CreatedAt, stored.CreatedAt, time.Second)
}

func TestDeleteProject(t *testing.T) {
	srv, db := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/projects", token, models.Project{
		Title:       "doomed",
		Description: "desc",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.Project](t, res)

	res = doJSON(t, srv, http.MethodDelete, "/projects/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody[map[string]string](t, res)
	assert.Equal(t, "project deleted successfully", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

// Deleting an id that does not exist is indistinguishable from a storage
// failure in this API: a 500, not a 404.
func TestDeleteMissingProjectIsServerError(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodDelete, "/projects/"+uuid.NewString(), token, nil)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	body := decodeBody[map[string]string](t, res)
	assert.Equal(t, "delete project failed", body["error"])
}
