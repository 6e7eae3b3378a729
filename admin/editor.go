package admin

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/murshedkoli/portfolio-backend/models"
)

// ProjectEditor is the editing buffer for a single project. The technologies
// field is held twice: TechnologiesInput is the raw comma-separated text the
// operator types, and the canonical slice is derived from it only when the
// buffer is reconciled on submit. Until then the two may diverge freely.
type ProjectEditor struct {
	ID                uuid.UUID
	Title             string
	Description       string
	LongDescription   string
	TechnologiesInput string
	GithubURL         string
	DemoURL           string
	ImageURL          string
	Featured          bool
	Order             int
	Status            string
}

// newProjectEditor copies a project into an editing buffer. A nil project
// seeds a blank buffer for create (nil ID tells the save path to POST).
func newProjectEditor(p *models.Project) *ProjectEditor {
	if p == nil {
		return &ProjectEditor{Status: models.ProjectStatusActive}
	}
	return &ProjectEditor{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		LongDescription:   p.LongDescription,
		TechnologiesInput: strings.Join(p.Technologies, ", "),
		GithubURL:         p.GithubURL,
		DemoURL:           p.DemoURL,
		ImageURL:          p.ImageURL,
		Featured:          p.Featured,
		Order:             p.Order,
		Status:            p.Status,
	}
}

// IsNew reports whether saving this buffer creates a project rather than
// updating one.
func (e *ProjectEditor) IsNew() bool {
	return e.ID == uuid.Nil
}

// Project reconciles the buffer into a canonical project. This is the only
// place TechnologiesInput is parsed.
func (e *ProjectEditor) Project() models.Project {
	return models.Project{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		LongDescription: e.LongDescription,
		Technologies:    datatypes.JSONSlice[string](SplitTechnologies(e.TechnologiesInput)),
		GithubURL:       e.GithubURL,
		DemoURL:         e.DemoURL,
		ImageURL:        e.ImageURL,
		Featured:        e.Featured,
		Order:           e.Order,
		Status:          e.Status,
	}
}

// SplitTechnologies turns comma-separated free text into the canonical
// technology list: tokens trimmed, empty ones dropped, order preserved.
func SplitTechnologies(input string) []string {
	parts := strings.Split(input, ",")
	technologies := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			technologies = append(technologies, trimmed)
		}
	}
	return technologies
}

// SkillEditor is the editing buffer for a single skill. Category choices are
// limited to the fixed list here, in the editor, not by the server.
type SkillEditor struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Proficiency int
	Icon        string
	Order       int
}

func newSkillEditor(s *models.Skill) *SkillEditor {
	if s == nil {
		return &SkillEditor{Category: models.CategoryFrontend, Proficiency: 50}
	}
	return &SkillEditor{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Icon:        s.Icon,
		Order:       s.Order,
	}
}

func (e *SkillEditor) IsNew() bool {
	return e.ID == uuid.Nil
}

// Categories returns the category choices the editor offers.
func (e *SkillEditor) Categories() []string {
	return models.SkillCategories()
}

func (e *SkillEditor) Skill() models.Skill {
	return models.Skill{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Proficiency: e.Proficiency,
		Icon:        e.Icon,
		Order:       e.Order,
	}
}
