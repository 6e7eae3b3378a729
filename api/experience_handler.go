package api

import (
	"encoding/json"
	"net/http"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/murshedkoli/portfolio-backend/database"
	"github.com/murshedkoli/portfolio-backend/errs"
	"github.com/murshedkoli/portfolio-backend/models"
)

// experienceHandler only lists and creates; the contract has no per-id
// experience routes.
type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
	listCache      *cache.Cache
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo, listCache *cache.Cache) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
		listCache:      listCache,
	}
}

func (h experienceHandler) getAllExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if data, found := h.listCache.Get(cacheKeyExperience); found {
			h.responder.WriteJSON(w, data)
			return
		}

		entries, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("fetch experience", err))
			return
		}
		if entries == nil {
			entries = []*models.Experience{}
		}

		h.listCache.Set(cacheKeyExperience, entries, cache.DefaultExpiration)
		h.responder.WriteJSON(w, entries)
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.Experience
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode experience request body")
			h.responder.WriteError(w, errs.NewActionFailed("create experience", err))
			return
		}

		if err := h.experienceRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("create experience", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, entry)
	}
}
