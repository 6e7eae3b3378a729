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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
	listCache *cache.Cache
}

func newSkillHandler(skillRepo *database.SkillRepo, listCache *cache.Cache) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
		listCache: listCache,
	}
}

// getAllSkills lists every skill ordered by category, manual order, name.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if data, found := h.listCache.Get(cacheKeySkills); found {
			h.responder.WriteJSON(w, data)
			return
		}

		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("fetch skills", err))
			return
		}
		if skills == nil {
			skills = []*models.Skill{}
		}

		h.listCache.Set(cacheKeySkills, skills, cache.DefaultExpiration)
		h.responder.WriteJSON(w, skills)
	}
}

// createSkill inserts a new skill. Proficiency zero is indistinguishable
// from absent and both become 50; out-of-range values are stored as-is.
// Category is not checked against the console's fixed list.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var skill models.Skill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewActionFailed("create skill", err))
			return
		}

		applySkillDefaults(&skill)

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("create skill", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSONStatus(w, http.StatusCreated, skill)
	}
}

// updateSkill is a full-field overwrite, same defaulting as create.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		existing, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update skill", err))
			return
		}

		var skill models.Skill
		if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewActionFailed("update skill", err))
			return
		}

		skill.ID = existing.ID
		skill.CreatedAt = existing.CreatedAt
		applySkillDefaults(&skill)

		if err := h.skillRepo.Update(&skill); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("update skill", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill removes a skill; a missing row is the same 500 as any other
// storage failure.
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("delete skill", err))
			return
		}

		h.listCache.Flush()
		h.responder.WriteJSON(w, map[string]string{
			"message": "skill deleted successfully",
		})
	}
}

func applySkillDefaults(skill *models.Skill) {
	if skill.Proficiency == 0 {
		skill.Proficiency = 50
	}
}
