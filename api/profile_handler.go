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

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	listCache   *cache.Cache
}

func newProfileHandler(profileRepo *database.ProfileRepo, listCache *cache.Cache) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		listCache:   listCache,
	}
}

// getProfile returns the most recently updated profile row, falling back to
// the hardcoded default object when none exists. The default is never
// persisted, so a site with no profile row keeps serving it indefinitely.
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if data, found := h.listCache.Get(cacheKeyProfile); found {
			h.responder.WriteJSON(w, data)
			return
		}

		profile, err := h.profileRepo.FindLatest()
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("fetch profile", err))
			return
		}

		if profile == nil {
			fallback := models.DefaultProfile()
			h.responder.WriteJSON(w, fallback)
			return
		}

		h.listCache.Set(cacheKeyProfile, *profile, cache.DefaultExpiration)
		h.responder.WriteJSON(w, *profile)
	}
}

// saveProfile is the two-step upsert behind both POST and PUT /profile:
// update the existing row if one exists, create it otherwise. Full-field
// overwrite: clients must resend the complete object or omitted optionals
// are blanked.
func (h profileHandler) saveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update profile", err))
			return
		}

		existing, err := h.profileRepo.FindFirst()
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update profile", err))
			return
		}

		if existing != nil {
			profile.ID = existing.ID
			profile.CreatedAt = existing.CreatedAt
			if err := h.profileRepo.Update(&profile); err != nil {
				h.responder.WriteError(w, errs.NewActionFailed("update profile", err))
				return
			}
		} else {
			if err := h.profileRepo.Add(&profile); err != nil {
				h.responder.WriteError(w, errs.NewActionFailed("update profile", err))
				return
			}
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, profile)
	}
}
