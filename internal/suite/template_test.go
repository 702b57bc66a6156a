package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_Render(t *testing.T) {
	tmpl := &Template{ID: "modus_ponens", Expression: "({{p}} & ({{p}} -> {{q}})) -> {{q}}"}

	result, err := tmpl.Render(TemplateParams{"p": "A | B", "q": "C"})
	require.NoError(t, err)
	assert.Equal(t, "((A | B) & ((A | B) -> (C))) -> (C)", result)
}

func TestTemplate_Render_MissingParams(t *testing.T) {
	tmpl := &Template{ID: "impl", Expression: "{{p}} -> {{q}}"}

	_, err := tmpl.Render(TemplateParams{"p": "A"})
	assert.ErrorContains(t, err, "missing params")
	assert.ErrorContains(t, err, "q")
}

func TestTemplate_RequiredParams(t *testing.T) {
	tmpl := &Template{ID: "t", Expression: "{{p}} <-> {{q}} | {{p}} & {{r}}"}
	assert.Equal(t, []string{"p", "q", "r"}, tmpl.RequiredParams())
}

func TestTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    *Template
		wantErr bool
	}{
		{name: "valid template", tmpl: &Template{ID: "t", Expression: "A"}},
		{name: "missing id", tmpl: &Template{Expression: "A"}, wantErr: true},
		{name: "no expression", tmpl: &Template{ID: "t"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTemplateRegistry(t *testing.T) {
	r := NewTemplateRegistry()
	require.NoError(t, r.Register(&Template{ID: "b", Expression: "{{x}}"}))
	require.NoError(t, r.Register(&Template{ID: "a", Expression: "!{{x}}"}))

	assert.ErrorContains(t, r.Register(&Template{ID: "a", Expression: "A"}), "already registered")
	assert.Error(t, r.Register(&Template{ID: "c"}))
	assert.Equal(t, []string{"a", "b"}, r.List())

	expr, err := r.Render("a", TemplateParams{"x": "A"})
	require.NoError(t, err)
	assert.Equal(t, "!(A)", expr)

	_, err = r.Render("missing", nil)
	assert.ErrorContains(t, err, "not found")
}
