package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/murshedkoli/portfolio-backend/models"
)

// State names the console's position in its editing workflow. Transitions
// are explicit and checked; there are no free-floating boolean flags.
type State string

const (
	StateIdle           State = "idle"
	StateLoading        State = "loading"
	StateEditingProject State = "editing_project"
	StateEditingProfile State = "editing_profile"
	StateEditingSkill   State = "editing_skill"
	StateSaving         State = "saving"
	StateError          State = "error"
)

// ErrInvalidTransition is returned when an operation is requested from a
// state it is not legal in.
var ErrInvalidTransition = errors.New("invalid state transition")

// Confirm asks the operator to approve a destructive action. Returning
// false aborts it.
type Confirm func(prompt string) bool

// Console drives the resource API on behalf of the admin operator. It holds
// a client-side snapshot of the server's entities and refetches all of it
// after every successful write instead of patching locally.
//
// The console models the one-logical-thread UI it replaces: it is not safe
// for concurrent use. The only internal concurrency is Load's fan-out, which
// joins before returning.
type Console struct {
	client  *Client
	confirm Confirm
	logger  zerolog.Logger

	state   State
	lastErr error

	Projects []models.Project
	Profile  models.Profile
	Skills   []models.Skill

	projectEditor *ProjectEditor
	profileEditor *models.Profile
	skillEditor   *SkillEditor
}

// NewConsole builds an idle console. A nil confirm declines every delete.
func NewConsole(client *Client, confirm Confirm) *Console {
	logger := log.With().Str("handlerName", "adminConsole").Logger()

	if confirm == nil {
		logger.Warn().Msg("no confirm hook provided, deletes will be declined")
		confirm = func(string) bool { return false }
	}

	return &Console{
		client:  client,
		confirm: confirm,
		logger:  logger,
		state:   StateIdle,
	}
}

func (c *Console) State() State {
	return c.state
}

// Err returns the failure that put the console into StateError, or nil.
func (c *Console) Err() error {
	return c.lastErr
}

// Load refetches all three entity snapshots concurrently. Each slice is
// updated independently when its own fetch succeeds; a failed fetch is
// logged and the stale snapshot kept, so Load itself never fails.
func (c *Console) Load(ctx context.Context) error {
	if c.state != StateIdle && c.state != StateError {
		return fmt.Errorf("%w: cannot load from %s", ErrInvalidTransition, c.state)
	}
	c.state = StateLoading
	c.lastErr = nil

	c.refresh(ctx)

	c.state = StateIdle
	return nil
}

func (c *Console) refresh(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error {
		projects, err := c.client.ListProjects(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("Error fetching projects")
			return nil
		}
		c.Projects = projects
		return nil
	})

	g.Go(func() error {
		profile, err := c.client.GetProfile(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("Error fetching profile")
			return nil
		}
		c.Profile = profile
		return nil
	})

	g.Go(func() error {
		skills, err := c.client.ListSkills(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("Error fetching skills")
			return nil
		}
		c.Skills = skills
		return nil
	})

	g.Wait()
}

// Projects

// EditProject opens an editing buffer for a loaded project.
func (c *Console) EditProject(id uuid.UUID) error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot edit project from %s", ErrInvalidTransition, c.state)
	}
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			c.projectEditor = newProjectEditor(&c.Projects[i])
			c.state = StateEditingProject
			return nil
		}
	}
	return fmt.Errorf("project %s not loaded", id)
}

// NewProject opens a blank buffer whose save will create a project.
func (c *Console) NewProject() error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot create project from %s", ErrInvalidTransition, c.state)
	}
	c.projectEditor = newProjectEditor(nil)
	c.state = StateEditingProject
	return nil
}

// ProjectEditor returns the open buffer, or nil outside StateEditingProject.
func (c *Console) ProjectEditor() *ProjectEditor {
	return c.projectEditor
}

// SaveProject reconciles the buffer and writes it, creating or updating
// based on the buffer's id. Success triggers a full refetch and clears the
// buffer; failure moves to StateError with the buffer retained so the edit
// is not lost.
func (c *Console) SaveProject(ctx context.Context) error {
	if c.state != StateEditingProject {
		return fmt.Errorf("%w: cannot save project from %s", ErrInvalidTransition, c.state)
	}
	c.state = StateSaving

	project := c.projectEditor.Project()

	var err error
	if c.projectEditor.IsNew() {
		_, err = c.client.CreateProject(ctx, project)
	} else {
		_, err = c.client.UpdateProject(ctx, project)
	}
	if err != nil {
		c.logger.Error().Err(err).Msg("Error saving project")
		c.state = StateError
		c.lastErr = err
		return err
	}

	c.refresh(ctx)
	c.projectEditor = nil
	c.state = StateIdle
	return nil
}

// DeleteProject deletes after operator confirmation; declining is a no-op.
// No undo exists.
func (c *Console) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot delete project from %s", ErrInvalidTransition, c.state)
	}
	if !c.confirm("Are you sure you want to delete this project?") {
		return nil
	}

	if err := c.client.DeleteProject(ctx, id); err != nil {
		c.logger.Error().Err(err).Msg("Error deleting project")
		c.state = StateError
		c.lastErr = err
		return err
	}

	c.refresh(ctx)
	return nil
}

// Profile

// EditProfile opens an editing buffer seeded from the loaded profile.
func (c *Console) EditProfile() error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot edit profile from %s", ErrInvalidTransition, c.state)
	}
	buffer := c.Profile
	c.profileEditor = &buffer
	c.state = StateEditingProfile
	return nil
}

// ProfileEditor returns the open buffer, or nil outside StateEditingProfile.
func (c *Console) ProfileEditor() *models.Profile {
	return c.profileEditor
}

// SaveProfile writes the full profile object; the server treats it as a
// complete overwrite, so the buffer always carries every field.
func (c *Console) SaveProfile(ctx context.Context) error {
	if c.state != StateEditingProfile {
		return fmt.Errorf("%w: cannot save profile from %s", ErrInvalidTransition, c.state)
	}
	c.state = StateSaving

	if _, err := c.client.SaveProfile(ctx, *c.profileEditor); err != nil {
		c.logger.Error().Err(err).Msg("Error saving profile")
		c.state = StateError
		c.lastErr = err
		return err
	}

	c.refresh(ctx)
	c.profileEditor = nil
	c.state = StateIdle
	return nil
}

// Skills

// EditSkill opens an editing buffer for a loaded skill.
func (c *Console) EditSkill(id uuid.UUID) error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot edit skill from %s", ErrInvalidTransition, c.state)
	}
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			c.skillEditor = newSkillEditor(&c.Skills[i])
			c.state = StateEditingSkill
			return nil
		}
	}
	return fmt.Errorf("skill %s not loaded", id)
}

// NewSkill opens a blank buffer whose save will create a skill.
func (c *Console) NewSkill() error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot create skill from %s", ErrInvalidTransition, c.state)
	}
	c.skillEditor = newSkillEditor(nil)
	c.state = StateEditingSkill
	return nil
}

// SkillEditor returns the open buffer, or nil outside StateEditingSkill.
func (c *Console) SkillEditor() *SkillEditor {
	return c.skillEditor
}

func (c *Console) SaveSkill(ctx context.Context) error {
	if c.state != StateEditingSkill {
		return fmt.Errorf("%w: cannot save skill from %s", ErrInvalidTransition, c.state)
	}
	c.state = StateSaving

	skill := c.skillEditor.Skill()

	var err error
	if c.skillEditor.IsNew() {
		_, err = c.client.CreateSkill(ctx, skill)
	} else {
		_, err = c.client.UpdateSkill(ctx, skill)
	}
	if err != nil {
		c.logger.Error().Err(err).Msg("Error saving skill")
		c.state = StateError
		c.lastErr = err
		return err
	}

	c.refresh(ctx)
	c.skillEditor = nil
	c.state = StateIdle
	return nil
}

// DeleteSkill deletes after operator confirmation; declining is a no-op.
func (c *Console) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: cannot delete skill from %s", ErrInvalidTransition, c.state)
	}
	if !c.confirm("Are you sure you want to delete this skill?") {
		return nil
	}

	if err := c.client.DeleteSkill(ctx, id); err != nil {
		c.logger.Error().Err(err).Msg("Error deleting skill")
		c.state = StateError
		c.lastErr = err
		return err
	}

	c.refresh(ctx)
	return nil
}

// Cancel abandons any open editing buffer or error and returns to idle.
func (c *Console) Cancel() {
	c.projectEditor = nil
	c.profileEditor = nil
	c.skillEditor = nil
	c.lastErr = nil
	c.state = StateIdle
}

// SkillGroup is one category's worth of skills in display order.
type SkillGroup struct {
	Category string
	Skills   []models.Skill
}

// GroupedSkills buckets the loaded skills by category in the fixed display
// priority. Skills in categories outside the fixed list are not rendered,
// even though the API stores them.
func (c *Console) GroupedSkills() []SkillGroup {
	groups := make([]SkillGroup, 0, len(models.SkillCategories()))
	for _, category := range models.SkillCategories() {
		group := SkillGroup{Category: category}
		for _, skill := range c.Skills {
			if skill.Category == category {
				group.Skills = append(group.Skills, skill)
			}
		}
		groups = append(groups, group)
	}
	return groups
}
