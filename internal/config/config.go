// Package config loads the league configuration from a JSON file and the
// Google credentials from the environment. A .env file next to the working
// directory is honored for local runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/hsato/go-mleague-draft/internal/model"
)

// Config is the full league configuration.
type Config struct {
	SeasonStartYear int      `json:"season_start_year" validate:"required,gte=2000"`
	URLs            []string `json:"urls" validate:"required,min=1,dive,url"`

	SpreadsheetID      string `json:"spreadsheet_id"`
	ServiceAccountFile string `json:"service_account_file"`

	OutputCSV  string `json:"output_csv"`
	OutputHTML string `json:"output_html"`

	DraftTeams    []model.DraftTeam      `json:"draft_teams" validate:"required,min=1,dive"`
	TeamColors    map[string]model.RGB   `json:"team_colors"`
	SpecialRules  model.SpecialRules     `json:"special_rules"`
	LeaguePlayers []string               `json:"league_players" validate:"required,min=1"`
	Membership    model.MembershipPolicy `json:"membership_policy" validate:"omitempty,oneof=credit-all strict-single"`
}

// GoogleCredentialsEnv is the env var holding the service account JSON when
// no service_account_file is configured, for CI runs.
const GoogleCredentialsEnv = "GOOGLE_CREDENTIALS_JSON"

var validate = validator.New()

// Load reads and validates the config at path. Defaults are applied before
// validation: output_csv "results.csv", output_html "index.html" and the
// credit-all membership policy.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.OutputCSV == "" {
		cfg.OutputCSV = "results.csv"
	}
	if cfg.OutputHTML == "" {
		cfg.OutputHTML = "index.html"
	}
	if cfg.Membership == "" {
		cfg.Membership = model.CreditAllMatches
	}
	cfg.LeaguePlayers = dedupSorted(cfg.LeaguePlayers)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Credentials returns the service account JSON, preferring the configured
// file over the environment variable.
func (c *Config) Credentials() ([]byte, error) {
	if c.ServiceAccountFile != "" {
		data, err := os.ReadFile(c.ServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return data, nil
	}
	if v := os.Getenv(GoogleCredentialsEnv); v != "" {
		return []byte(v), nil
	}
	return nil, fmt.Errorf("no credentials: set service_account_file or %s", GoogleCredentialsEnv)
}

func dedupSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
