package simulator

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/game"
)

// ScenarioFile represents a parsed scenario configuration file
type ScenarioFile struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario defines one simulation batch. K and Workers are pointers because
// zero is a meaningful setting for both and must be distinguishable from an
// omitted field.
type Scenario struct {
	Name           string `hcl:"name,label"`
	Games          int    `hcl:"games,optional"`
	K              *int   `hcl:"k,optional"`
	HonorThreshold int    `hcl:"honor_threshold,optional"`
	DeckSize       int    `hcl:"deck_size,optional"`
	Seed           int64  `hcl:"seed,optional"`
	Workers        *int   `hcl:"workers,optional"`
}

// Params returns the game parameters declared by the scenario.
func (sc *Scenario) Params() game.Params {
	params := game.DefaultParams()
	if sc.K != nil {
		params.K = *sc.K
	}
	params.HonorThreshold = deck.Rank(sc.HonorThreshold)
	return params
}

// NumWorkers returns the configured worker count, or 0 for the default pool.
func (sc *Scenario) NumWorkers() int {
	if sc.Workers == nil {
		return 0
	}
	return *sc.Workers
}

// LoadScenarios loads scenario configuration from an HCL file
func LoadScenarios(filename string) (*ScenarioFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ScenarioFile
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	for i := range config.Scenarios {
		if config.Scenarios[i].Games == 0 {
			config.Scenarios[i].Games = 10000
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the scenario configuration
func (c *ScenarioFile) Validate() error {
	if len(c.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario must be configured")
	}

	seen := make(map[string]bool)
	for _, sc := range c.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario name must not be empty")
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate scenario name %q", sc.Name)
		}
		seen[sc.Name] = true

		if sc.Games <= 0 {
			return fmt.Errorf("scenario %s: games must be positive", sc.Name)
		}
		if sc.K != nil && *sc.K < 0 {
			return fmt.Errorf("scenario %s: k must be non-negative", sc.Name)
		}
		if sc.HonorThreshold < 0 || sc.HonorThreshold > 255 {
			return fmt.Errorf("scenario %s: honor_threshold must be between 0 and 255", sc.Name)
		}
		if sc.DeckSize != 0 && sc.DeckSize < 2 {
			return fmt.Errorf("scenario %s: deck_size must be at least 2", sc.Name)
		}
		if sc.Workers != nil && *sc.Workers < 0 {
			return fmt.Errorf("scenario %s: workers must be non-negative", sc.Name)
		}
	}

	return nil
}
