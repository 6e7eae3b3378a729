package api

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/murshedkoli/portfolio-backend/database"
)

// Read-cache keys, one per public GET endpoint. Every successful mutation
// flushes the whole cache rather than tracking which key it touched.
const (
	cacheKeyProfile    = "profile"
	cacheKeyProjects   = "projects"
	cacheKeySkills     = "skills"
	cacheKeyEducation  = "education"
	cacheKeyExperience = "experience"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler       authHandler
	profileHandler    profileHandler
	projectHandler    projectHandler
	skillHandler      skillHandler
	educationHandler  educationHandler
	experienceHandler experienceHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, auth sessionAuth, adminPassword string) *routeHandlers {
	listCache := cache.New(30*time.Second, 5*time.Minute)

	return &routeHandlers{
		authHandler:       newAuthHandler(auth, adminPassword),
		profileHandler:    newProfileHandler(database.ProfileRepo(), listCache),
		projectHandler:    newProjectHandler(database.ProjectRepo(), listCache),
		skillHandler:      newSkillHandler(database.SkillRepo(), listCache),
		educationHandler:  newEducationHandler(database.EducationRepo(), listCache),
		experienceHandler: newExperienceHandler(database.ExperienceRepo(), listCache),
	}
}
