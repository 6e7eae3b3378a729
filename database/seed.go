package database

import (
	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

// sampleSkills is the fixed seed dataset: ten skills across the four
// display categories.
var sampleSkills = []models.Skill{
	{Name: "React", Category: models.CategoryFrontend, Proficiency: 90, Icon: "⚛️", Order: 1},
	{Name: "TypeScript", Category: models.CategoryFrontend, Proficiency: 85, Icon: "🔷", Order: 2},
	{Name: "Next.js", Category: models.CategoryFrontend, Proficiency: 88, Icon: "▲", Order: 3},
	{Name: "Node.js", Category: models.CategoryBackend, Proficiency: 82, Icon: "🟢", Order: 1},
	{Name: "PostgreSQL", Category: models.CategoryBackend, Proficiency: 75, Icon: "🐘", Order: 2},
	{Name: "Prisma", Category: models.CategoryBackend, Proficiency: 80, Icon: "🔺", Order: 3},
	{Name: "Git", Category: models.CategoryTools, Proficiency: 85, Icon: "📚", Order: 1},
	{Name: "Docker", Category: models.CategoryTools, Proficiency: 70, Icon: "🐳", Order: 2},
	{Name: "JavaScript", Category: models.CategoryLanguages, Proficiency: 92, Icon: "🟨", Order: 1},
	{Name: "Python", Category: models.CategoryLanguages, Proficiency: 78, Icon: "🐍", Order: 2},
}

// SeedSkills resets the skills table to the sample dataset. Destructive:
// every existing skill row is removed first.
func SeedSkills(db *gorm.DB) (int, error) {
	skills := make([]models.Skill, len(sampleSkills))
	copy(skills, sampleSkills)
	if err := NewSkillRepo(db).ReplaceAll(skills); err != nil {
		return 0, err
	}
	return len(skills), nil
}
