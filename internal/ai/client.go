// Package ai is the client for the generative content collaborator. It is
// best-effort enrichment only: callers treat any error as "skip", nothing
// is retried and nothing already created is rolled back.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"study-planner.com/study-planner/pkg/constants"
)

type ProposedTask struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	Category    constants.Category `json:"category"`
	Priority    constants.Priority `json:"priority"`
	Subtasks    []string           `json:"subtasks"`
}

type ProposedModule struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tasks       []ProposedTask `json:"tasks"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// GenerateModules asks the collaborator for proposed modules and tasks for
// the given system title and syllabus text.
func (c *Client) GenerateModules(ctx context.Context, title, syllabus string) ([]ProposedModule, error) {
	payload, err := json.Marshal(map[string]string{
		"title":    title,
		"syllabus": syllabus,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/modules:generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content service returned %s", resp.Status)
	}

	var body struct {
		Modules []ProposedModule `json:"modules"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode content service response: %w", err)
	}
	return body.Modules, nil
}
