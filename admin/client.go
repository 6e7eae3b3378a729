package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/murshedkoli/portfolio-backend/models"
)

// Client is the console's typed view of the resource API. Every call is a
// single synchronous attempt: no retries, no queueing. A non-2xx response is
// an error carrying the server's message.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     zerolog.Logger
}

func NewClient(baseURL string) *Client {
	logger := log.With().Str("handlerName", "adminClient").Logger()

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges the admin password for a session token, which the client
// attaches to every later mutating call.
func (c *Client) Login(ctx context.Context, password string) error {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"password": password}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, errResp.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := c.do(ctx, http.MethodGet, "/projects", nil, &projects)
	return projects, err
}

func (c *Client) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var created models.Project
	err := c.do(ctx, http.MethodPost, "/projects", project, &created)
	return created, err
}

func (c *Client) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	var updated models.Project
	err := c.do(ctx, http.MethodPut, "/projects/"+project.ID.String(), project, &updated)
	return updated, err
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+id.String(), nil, nil)
}

// Profile

func (c *Client) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	err := c.do(ctx, http.MethodGet, "/profile", nil, &profile)
	return profile, err
}

func (c *Client) SaveProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	var saved models.Profile
	err := c.do(ctx, http.MethodPut, "/profile", profile, &saved)
	return saved, err
}

// Skills

func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.do(ctx, http.MethodGet, "/skills", nil, &skills)
	return skills, err
}

func (c *Client) CreateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	var created models.Skill
	err := c.do(ctx, http.MethodPost, "/skills", skill, &created)
	return created, err
}

func (c *Client) UpdateSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	var updated models.Skill
	err := c.do(ctx, http.MethodPut, "/skills/"+skill.ID.String(), skill, &updated)
	return updated, err
}

func (c *Client) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/skills/"+id.String(), nil, nil)
}
