// Package refdata provides the provinces and skills catalogs that parsed
// fields are matched against. Catalogs come from the central HR API when an
// endpoint is configured and fall back to embedded copies otherwise, so a
// batch run never fails on catalog availability.
package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devwork/cv-pipeline/pkg/logger"
)

// Province is an administrative region in the provinces catalog
type Province struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Skill is an entry in the skills catalog
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DefaultProvinceID is the catalog entry used when no location matches
const DefaultProvinceID = 99

// Catalogs holds the loaded reference data together with the matchers
// built from it.
type Catalogs struct {
	provinces []Province
	skills    []Skill

	locationMatcher *locationMatcher
	skillMatcher    *skillMatcher
}

// Client fetches reference data over HTTP
type Client struct {
	provincesURL string
	skillsURL    string
	httpClient   *http.Client
	log          *logger.Logger
}

// NewClient creates a reference-data client. Empty URLs mean the embedded
// catalogs are used.
func NewClient(provincesURL, skillsURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		provincesURL: provincesURL,
		skillsURL:    skillsURL,
		httpClient:   &http.Client{Timeout: timeout},
		log:          log,
	}
}

// Load fetches both catalogs and builds the matchers. Fetch failures are
// logged and fall back to the embedded catalogs.
func (c *Client) Load(ctx context.Context) *Catalogs {
	provinces := defaultProvinces
	if c.provincesURL != "" {
		fetched, err := fetchCatalog[Province](ctx, c.httpClient, c.provincesURL)
		if err != nil {
			c.log.Warn().Err(err).Str("url", c.provincesURL).Msg("provinces fetch failed, using embedded catalog")
		} else {
			provinces = fetched
		}
	}

	skills := defaultSkills
	if c.skillsURL != "" {
		fetched, err := fetchCatalog[Skill](ctx, c.httpClient, c.skillsURL)
		if err != nil {
			c.log.Warn().Err(err).Str("url", c.skillsURL).Msg("skills fetch failed, using embedded catalog")
		} else {
			skills = fetched
		}
	}

	return NewCatalogs(provinces, skills)
}

// NewCatalogs builds catalogs from explicit lists (used by tests and by
// the embedded fallback).
func NewCatalogs(provinces []Province, skills []Skill) *Catalogs {
	return &Catalogs{
		provinces:       provinces,
		skills:          skills,
		locationMatcher: newLocationMatcher(provinces),
		skillMatcher:    newSkillMatcher(skills),
	}
}

// Embedded returns catalogs built from the embedded reference lists
func Embedded() *Catalogs {
	return NewCatalogs(defaultProvinces, defaultSkills)
}

// Provinces returns the loaded provinces catalog
func (c *Catalogs) Provinces() []Province { return c.provinces }

// ProvinceNames returns all province names, for gazetteer use
func (c *Catalogs) ProvinceNames() []string {
	names := make([]string, len(c.provinces))
	for i, p := range c.provinces {
		names[i] = p.Name
	}
	return names
}

// catalogEnvelope mirrors the HR API response shape
type catalogEnvelope[T any] struct {
	Data []T `json:"data"`
}

func fetchCatalog[T any](ctx context.Context, client *http.Client, url string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("refdata: create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("refdata: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("refdata: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("refdata: endpoint returned %d", resp.StatusCode)
	}

	var envelope catalogEnvelope[T]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("refdata: parse response: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("refdata: endpoint returned empty catalog")
	}

	return envelope.Data, nil
}
