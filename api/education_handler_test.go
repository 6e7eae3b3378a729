package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murshedkoli/portfolio-backend/models"
)

func TestCreateEducationAcceptsDateOnly(t *testing.T) {
	srv, db := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/education", token, map[string]any{
		"institution": "MIT",
		"degree":      "BSc",
		"field":       "Computer Science",
		"startDate":   "2018-09-01",
		"endDate":     "2022-06-15T00:00:00Z",
		"gpa":         "3.9",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.Education](t, res)

	assert.Equal(t, 2018, created.StartDate.Year())
	require.NotNil(t, created.EndDate)
	assert.Equal(t, 2022, created.EndDate.Year())

	var stored models.Education
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "3.9", stored.GPA)
	assert.Equal(t, 2018, stored.StartDate.Year())
}

func TestEducationListOrdersCurrentFirst(t *testing.T) {
	srv, db := newTestServer(t)

	finished := &models.Education{
		Institution: "Old School",
		Degree:      "Diploma",
		StartDate:   models.NewDate(time.Date(2020, time.September, 1, 0, 0, 0, 0, time.UTC)),
		Current:     false,
	}
	ongoing := &models.Education{
		Institution: "Grad School",
		Degree:      "MSc",
		StartDate:   models.NewDate(time.Date(2015, time.September, 1, 0, 0, 0, 0, time.UTC)),
		Current:     true,
	}
	require.NoError(t, db.Create(finished).Error)
	require.NoError(t, db.Create(ongoing).Error)

	res := doJSON(t, srv, http.MethodGet, "/education", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	listed := decodeBody[[]models.Education](t, res)

	// Ongoing first even though its start date is older.
	require.Len(t, listed, 2)
	assert.Equal(t, "Grad School", listed[0].Institution)
	assert.Equal(t, "Old School", listed[1].Institution)
}

func TestUpdateEducationFullOverwrite(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/education", token, map[string]any{
		"institution": "MIT",
		"degree":      "BSc",
		"startDate":   "2018-09-01",
		"gpa":         "3.9",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[models.Education](t, res)

	res = doJSON(t, srv, http.MethodPut, "/education/"+created.ID.String(), token, map[string]any{
		"institution": "MIT",
		"degree":      "MEng",
		"startDate":   "2018-09-01",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	updated := decodeBody[models.Education](t, res)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "MEng", updated.Degree)
	assert.Empty(t, updated.GPA)
}

func TestDeleteMissingEducationIsServerError(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodDelete, "/education/0f4d9c6e-7a11-4a7e-88f4-1f2b3c4d5e6f", token, nil)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	body := decodeBody[map[string]string](t, res)
	assert.Equal(t, "delete education failed", body["error"])
}

func TestExperienceCreateAndList(t *testing.T) {
	srv, _ := newTestServer(t)
	token := loginToken(t, srv)

	res := doJSON(t, srv, http.MethodPost, "/experience", token, map[string]any{
		"company":   "Initech",
		"position":  "Engineer",
		"startDate": "2019-01-15",
		"current":   false,
		"endDate":   "2021-03-31",
		"location":  "Remote",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, srv, http.MethodPost, "/experience", token, map[string]any{
		"company":   "Globex",
		"position":  "Senior Engineer",
		"startDate": "2021-04-01",
		"current":   true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	res.Body.Close()

	res = doJSON(t, srv, http.MethodGet, "/experience", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	listed := decodeBody[[]models.Experience](t, res)

	require.Len(t, listed, 2)
	assert.Equal(t, "Globex", listed[0].Company)
	assert.True(t, listed[0].Current)
	assert.Equal(t, "Initech", listed[1].Company)
	require.NotNil(t, listed[1].EndDate)
}
