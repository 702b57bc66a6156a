package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/logicka/internal/sat"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	registry := NewTemplateRegistry()
	for i := range s.Templates {
		if err := registry.Register(&s.Templates[i]); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if err := resolveExpression(registry, c); err != nil {
			return nil, err
		}

		switch c.Expect.Kind {
		case "", sat.Tautology, sat.Contradiction, sat.Contingent:
		default:
			return nil, fmt.Errorf("case %q expects unknown kind %q", c.ID, c.Expect.Kind)
		}

		if c.Expect.WantsError() && (len(c.Expect.Results) > 0 || len(c.Expect.Variables) > 0 || c.Expect.Kind != "") {
			return nil, fmt.Errorf("case %q expects both an error and a result", c.ID)
		}
	}

	return &s, nil
}

func resolveExpression(registry *TemplateRegistry, c *Case) error {
	if c.Template == "" {
		return nil
	}
	if c.Expression != "" {
		return fmt.Errorf("case %q sets both expression and template", c.ID)
	}

	expr, err := registry.Render(c.Template, c.Params)
	if err != nil {
		return fmt.Errorf("case %q: %w", c.ID, err)
	}
	c.Expression = expr
	return nil
}
