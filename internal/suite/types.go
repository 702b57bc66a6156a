package suite

import "github.com/DjordjeVuckovic/logicka/internal/sat"

type Suite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Version     string     `yaml:"version"`
	Templates   []Template `yaml:"templates,omitempty"`
	Cases       []Case     `yaml:"cases"`
}

// Case holds either an Expression or a Template with its Params. The loader
// renders templated cases into Expression.
type Case struct {
	ID          string          `yaml:"id"`
	Description string          `yaml:"description"`
	Expression  string          `yaml:"expression"`
	Template    string          `yaml:"template,omitempty"`
	Params      TemplateParams  `yaml:"params,omitempty"`
	Fixed       map[string]bool `yaml:"fixed,omitempty"`
	Expect      Expectation     `yaml:"expect"`
}

// Expectation lists what a case must produce. Empty fields are not checked.
type Expectation struct {
	Variables []string `yaml:"variables,omitempty"`
	// Results are the row results in table order.
	Results []bool   `yaml:"results,omitempty"`
	Kind    sat.Kind `yaml:"kind,omitempty"`
	// Error is a substring of the expected error message. When set the case
	// must fail.
	Error string `yaml:"error,omitempty"`
}

func (e Expectation) WantsError() bool {
	return e.Error != ""
}
