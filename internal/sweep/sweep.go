// Package sweep runs one scenario repeatedly over an evenly spaced
// range of a single parameter, producing a row of metrics per value.
package sweep

import (
	"fmt"

	"econlab/internal/econ"
	"econlab/internal/scenario"
)

// Spec describes a one-parameter sweep.
type Spec struct {
	Scenario scenario.Scenario

	// Parameter is the key in Scenario.Params being swept; any baseline
	// value for it in the map is overridden.
	Parameter string
	From      float64
	To        float64
	// Steps is the number of evaluated values, endpoints included.
	Steps int
}

func (s Spec) Validate() error {
	if s.Parameter == "" {
		return fmt.Errorf("sweep parameter is required: %w", econ.ErrInvalidDomain)
	}
	if s.Steps < 2 {
		return fmt.Errorf("sweep needs at least 2 steps, got %d: %w", s.Steps, econ.ErrInvalidDomain)
	}
	if s.From == s.To {
		return fmt.Errorf("sweep range is empty (%g to %g): %w", s.From, s.To, econ.ErrInvalidDomain)
	}
	return nil
}

// Row is the metric vector at one swept parameter value.
type Row struct {
	Value   float64
	Metrics []scenario.Metric
}

// Result is the full sweep output. MetricNames repeats the per-row
// metric order once for header construction.
type Result struct {
	Module    string
	Operation string
	Parameter string

	MetricNames []string
	Rows        []Row
}

// Run evaluates the scenario once per swept value. The same seed is
// reused across steps so sampling operations differ only through the
// swept parameter.
func Run(spec Spec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, spec.Steps)
	var names []string

	for i := 0; i < spec.Steps; i++ {
		value := spec.From + (spec.To-spec.From)*float64(i)/float64(spec.Steps-1)

		sc := spec.Scenario
		sc.Params = make(map[string]float64, len(spec.Scenario.Params)+1)
		for k, v := range spec.Scenario.Params {
			sc.Params[k] = v
		}
		sc.Params[spec.Parameter] = value

		metrics, err := scenario.Evaluate(sc)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s=%g): %w", i, spec.Parameter, value, err)
		}
		if names == nil {
			names = make([]string, len(metrics))
			for j, m := range metrics {
				names[j] = m.Name
			}
		}

		rows = append(rows, Row{Value: value, Metrics: metrics})
	}

	return &Result{
		Module:      spec.Scenario.Module,
		Operation:   spec.Scenario.Operation,
		Parameter:   spec.Parameter,
		MetricNames: names,
		Rows:        rows,
	}, nil
}
