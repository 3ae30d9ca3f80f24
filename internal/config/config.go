package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"econlab/internal/scenario"
	"econlab/internal/sweep"
)

// Config is the on-disk configuration shape (YAML) consumed by the CLI:
// one scenario, optionally swept over a single parameter.
type Config struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	Sweep    *SweepConfig   `yaml:"sweep,omitempty"`
	// Output is the CSV path for sweep results.
	Output string `yaml:"output,omitempty"`
}

type ScenarioConfig struct {
	Module    string             `yaml:"module"`
	Operation string             `yaml:"operation"`
	Params    map[string]float64 `yaml:"params"`
	Seed      int64              `yaml:"seed"`
}

type SweepConfig struct {
	Parameter string  `yaml:"parameter"`
	From      float64 `yaml:"from"`
	To        float64 `yaml:"to"`
	// Steps defaults to 20 when omitted.
	Steps int `yaml:"steps"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Sweep != nil && c.Sweep.Steps == 0 {
		c.Sweep.Steps = 20
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validation. Useful
// for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Scenario.Module == "" {
		return errors.New("scenario.module is required")
	}
	if c.Scenario.Operation == "" {
		return errors.New("scenario.operation is required")
	}
	// Validate the scenario by evaluating it once on its own params.
	if _, err := scenario.Evaluate(c.ToScenario()); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	if c.Sweep != nil {
		if err := c.ToSweepSpec().Validate(); err != nil {
			return fmt.Errorf("sweep config invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) ToScenario() scenario.Scenario {
	return scenario.Scenario{
		Module:    c.Scenario.Module,
		Operation: c.Scenario.Operation,
		Params:    c.Scenario.Params,
		Seed:      c.Scenario.Seed,
	}
}

// ToSweepSpec builds the sweep spec; call only when Sweep is set.
func (c *Config) ToSweepSpec() sweep.Spec {
	return sweep.Spec{
		Scenario:  c.ToScenario(),
		Parameter: c.Sweep.Parameter,
		From:      c.Sweep.From,
		To:        c.Sweep.To,
		Steps:     c.Sweep.Steps,
	}
}
