package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read path and the session-gated write path.
// GETs stay open so the public site can render without credentials; every
// mutation requires a valid session token.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth sessionAuth) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/education", handlers.educationHandler.getAllEducation())
		r.Get("/experience", handlers.experienceHandler.getAllExperience())
	})

	// Mutating routes behind session auth
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.requireSession)

		r.Post("/profile", handlers.profileHandler.saveProfile())
		r.Put("/profile", handlers.profileHandler.saveProfile())

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/skills", handlers.skillHandler.createSkill())
		r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Post("/education", handlers.educationHandler.createEducation())
		r.Put("/education/{educationID}", handlers.educationHandler.updateEducation())
		r.Delete("/education/{educationID}", handlers.educationHandler.deleteEducation())

		r.Post("/experience", handlers.experienceHandler.createExperience())
	})
}
