package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/murshedkoli/portfolio-backend/database"
	"github.com/murshedkoli/portfolio-backend/errs"
	"github.com/murshedkoli/portfolio-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	listCache   *cache.Cache
}

func newProjectHandler(projectRepo *database.ProjectRepo, listCache *cache.Cache) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		listCache:   listCache,
	}
}

// getAllProjects lists active projects only. Inactive rows stay stored but
// never appear here. Featured first, then manual order, then newest.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if data, found := h.listCache.Get(cacheKeyProjects); found {
			h.responder.WriteJSON(w, data)
			return
		}

		projects, err := h.projectRepo.FindAllActive()
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("fetch projects", err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		h.listCache.Set(cacheKeyProjects, projects, cache.DefaultExpiration)
		h.responder.WriteJSON(w, projects)
	}
}

// createProject inserts a new project. Shape is checked only loosely:
// missing optionals are defaulted here, missing required fields flow
// through to the storage layer.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewActionFailed("create project", err))
			return
		}

		applyProjectDefaults(&project)

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("create project", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject is a full-field overwrite, not a patch: every column is set
// from the request body, so omitted optionals are blanked. Only the id and
// creation timestamp survive from the stored row.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update project", err))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewActionFailed("update project", err))
			return
		}

		project.ID = existing.ID
		project.CreatedAt = existing.CreatedAt
		applyProjectDefaults(&project)

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update project", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project unconditionally. A missing row surfaces
// as the same 500 as a storage failure; callers cannot tell the two apart.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("delete project", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, map[string]string{
			"message": "project deleted successfully",
		})
	}
}

func applyProjectDefaults(project *models.Project) {
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}
	if project.Technologies == nil {
		project.Technologies = datatypes.JSONSlice[string]{}
	}
}
