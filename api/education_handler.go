package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/murshedkoli/portfolio-backend/database"
	"github.com/murshedkoli/portfolio-backend/errs"
	"github.com/murshedkoli/portfolio-backend/models"
)

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
	listCache     *cache.Cache
}

func newEducationHandler(educationRepo *database.EducationRepo, listCache *cache.Cache) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
		listCache:     listCache,
	}
}

// getAllEducation lists every entry, ongoing ones first.
func (h educationHandler) getAllEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if data, found := h.listCache.Get(cacheKeyEducation); found {
			h.responder.WriteJSON(w, data)
			return
		}

		entries, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("fetch education", err))
			return
		}
		if entries == nil {
			entries = []*models.Education{}
		}

		h.listCache.Set(cacheKeyEducation, entries, cache.DefaultExpiration)
		h.responder.WriteJSON(w, entries)
	}
}

func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.Education
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode education request body")
			h.responder.WriteError(w, errs.NewActionFailed("create education", err))
			return
		}

		if err := h.educationRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("create education", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, entry)
	}
}

// updateEducation is a full-field overwrite keyed by path id.
func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid educationID"))
			return
		}

		existing, err := h.educationRepo.FindByID(educationID)
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update education", err))
			return
		}

		var entry models.Education
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode education request body")
			h.responder.WriteError(w, errs.NewActionFailed("update education", err))
			return
		}

		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt

		if err := h.educationRepo.Update(&entry); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update education", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, entry)
	}
}

func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid educationID"))
			return
		}

		if err := h.educationRepo.Delete(educationID); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("delete education", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, map[string]string{
			"message": "education deleted successfully",
		})
	}
}
