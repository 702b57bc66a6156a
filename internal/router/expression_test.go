package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/logicka/internal/apperr"
	"github.com/DjordjeVuckovic/logicka/internal/dto"
	"github.com/DjordjeVuckovic/logicka/internal/engine"
	"github.com/DjordjeVuckovic/logicka/internal/sat"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(opts ...engine.Option) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewExpressionRouter(e, engine.New(opts...)).Bind()
	return e
}

func post(t *testing.T, e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestExpressionRouter_Variables(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/variables", `{"expression":"B && (A || !B) -> C"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.VariablesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"B", "A", "C"}, resp.Variables)
}

func TestExpressionRouter_VariablesEmpty(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/variables", `{"expression":"1 | 0"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"variables":[]}`, rec.Body.String())
}

func TestExpressionRouter_TruthTable(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/truth-table", `{"expression":"A || B"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []truthtable.Row
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 4)

	results := make([]bool, len(rows))
	for i, r := range rows {
		results[i] = r.Result
	}
	assert.Equal(t, []bool{false, true, true, true}, results)
	assert.Equal(t, []truthtable.Variable{{Name: "A", Value: false}, {Name: "B", Value: true}}, rows[1].Variables)
}

func TestExpressionRouter_TruthTableFixed(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/truth-table", `{"expression":"A && B","fixed":{"A":true}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"Result":false,"Variables":[{"Name":"A","Value":true},{"Name":"B","Value":false}]},
		{"Result":true,"Variables":[{"Name":"A","Value":true},{"Name":"B","Value":true}]}
	]`, rec.Body.String())
}

func TestExpressionRouter_Simplify(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/simplify", `{"expression":"!!A & 1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SimplifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A", resp.Simplified)
	assert.NotEmpty(t, resp.Steps)
}

func TestExpressionRouter_SimplifyNoSteps(t *testing.T) {
	e := newTestEcho()

	rec := post(t, e, "/api/v1/simplify", `{"expression":"A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"steps":[]`)
}

func TestExpressionRouter_Classify(t *testing.T) {
	e := newTestEcho()

	tests := []struct {
		expr string
		kind sat.Kind
	}{
		{expr: "A | !A", kind: sat.Tautology},
		{expr: "A & !A", kind: sat.Contradiction},
		{expr: "A -> B", kind: sat.Contingent},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			body, err := json.Marshal(dto.ExpressionRequest{Expression: tt.expr})
			require.NoError(t, err)

			rec := post(t, e, "/api/v1/classify", string(body))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp dto.ClassifyResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}

func TestExpressionRouter_ValidationErrors(t *testing.T) {
	e := newTestEcho(engine.WithMaxFreeVariables(2))

	tests := []struct {
		name     string
		path     string
		body     string
		contains string
	}{
		{name: "syntax error", path: "/api/v1/variables", body: `{"expression":"A &&"}`, contains: "invalid expression"},
		{name: "lexical error", path: "/api/v1/truth-table", body: `{"expression":"A $ B"}`, contains: "invalid expression"},
		{name: "empty expression", path: "/api/v1/simplify", body: `{"expression":""}`, contains: "expression is required"},
		{name: "blank expression", path: "/api/v1/truth-table", body: `{"expression":"  \t"}`, contains: "expression is required"},
		{name: "missing expression", path: "/api/v1/variables", body: `{}`, contains: "expression is required"},
		{name: "unknown fixed variable", path: "/api/v1/truth-table", body: `{"expression":"A","fixed":{"Z":true}}`, contains: "invalid fixed values"},
		{name: "too many variables", path: "/api/v1/truth-table", body: `{"expression":"A & B & C"}`, contains: "truth table too large"},
		{name: "malformed body", path: "/api/v1/classify", body: `{"expression":`, contains: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, e, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "validation error", body["title"])
			assert.Contains(t, body["error"], tt.contains)
		})
	}
}

func TestExpressionRouter_MethodNotAllowed(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/variables", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
