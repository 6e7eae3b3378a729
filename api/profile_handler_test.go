package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murshedkoli/portfolio-backend/models"
)

func TestGetProfileFallsBackToDefault(t *testing.T) {
	srv, db := newTestServer(t)

	res := doJSON(t, srv, http.MethodGet, "/profile", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	profile := decodeBody[models.Profile](t, res)

	assert.Equal(t, "Murshed Koli", profile.Name)
	assert.Equal(t, uuid.Nil, profile.ID)

	// The fallback is served, never stored.
	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveProfileCreatesThenUpdates(t *testing.T) {
	srv, db := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPut, "/profile", token, map[string]any{
		"name":        "Ada Lovelace",
		"title":       "Engineer",
		"description": "First programmer",
		"email":       "ada@example.com",
		"phone":       "+44 20 7946 0000",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	created := decodeBody[models.Profile](t, res)
	require.NotEqual(t, uuid.Nil, created.ID)

	// Second save reuses the existing row instead of inserting another.
	res = doJSON(t, srv, http.MethodPut, "/profile", token, map[string]any{
		"name":        "Ada Lovelace",
		"title":       "Staff Engineer",
		"description": "First programmer",
		"email":       "ada@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	updated := decodeBody[models.Profile](t, res)
	assert.Equal(t, created.ID, updated.ID)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "Staff Engineer", stored.Title)
	// Omitted optional fields are blanked on overwrite.
	assert.Empty(t, stored.Phone)
}

func TestSaveProfileAcceptsPost(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/profile", token, map[string]any{
		"name":        "Grace Hopper",
		"title":       "Rear Admiral",
		"description": "Compiler pioneer",
		"email":       "grace@example.com",
		"socialLinks": map[string]string{
			"github": "https://github.com/ghopper",
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	created := decodeBody[models.Profile](t, res)
	assert.Equal(t, "https://github.com/ghopper", created.SocialLinks.Data().Github)
}

func TestGetProfileReturnsLatestRow(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPut, "/profile", token, map[string]any{
		"name":        "First Save",
		"title":       "Dev",
		"description": "d",
		"email":       "a@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, srv, http.MethodPut, "/profile", token, map[string]any{
		"name":        "Second Save",
		"title":       "Dev",
		"description": "d",
		"email":       "a@example.com",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, srv, http.MethodGet, "/profile", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	visible := decodeBody[models.Profile](t, res)
	assert.Equal(t, "Second Save", visible.Name)
}
