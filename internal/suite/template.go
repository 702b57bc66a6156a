package suite

import (
	"fmt"
	"regexp"
	"sort"
)

// Template is an expression with {{name}} placeholders shared by several
// cases, e.g. "{{p}} -> {{q}}".
type Template struct {
	ID         string `yaml:"id"`
	Expression string `yaml:"expression"`
}

type TemplateParams map[string]string

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes every placeholder. Params are inserted in parentheses
// so a sub-expression keeps its own grouping.
func (t *Template) Render(params TemplateParams) (string, error) {
	result := placeholderRegex.ReplaceAllStringFunc(t.Expression, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return "(" + val + ")"
		}
		return match
	})

	missing := findMissingPlaceholders(result)
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q missing params: %v", t.ID, missing)
	}
	return result, nil
}

func (t *Template) RequiredParams() []string {
	return findMissingPlaceholders(t.Expression)
}

func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if t.Expression == "" {
		return fmt.Errorf("template %q has no expression", t.ID)
	}
	return nil
}

func findMissingPlaceholders(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var missing []string
	for _, m := range matches {
		if len(m) > 1 && !seen[m[1]] {
			seen[m[1]] = true
			missing = append(missing, m[1])
		}
	}
	return missing
}

type TemplateRegistry struct {
	templates map[string]*Template
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*Template),
	}
}

func (r *TemplateRegistry) Register(t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("template %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

func (r *TemplateRegistry) Get(id string) (*Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

func (r *TemplateRegistry) Render(templateID string, params TemplateParams) (string, error) {
	t, ok := r.Get(templateID)
	if !ok {
		return "", fmt.Errorf("template %q not found", templateID)
	}
	return t.Render(params)
}

func (r *TemplateRegistry) List() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
