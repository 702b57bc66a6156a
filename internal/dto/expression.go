package dto

import (
	"github.com/DjordjeVuckovic/logicka/internal/sat"
	"github.com/DjordjeVuckovic/logicka/internal/simplify"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"A && (B || !C)"`
}

type TruthTableRequest struct {
	Expression string          `json:"expression" example:"A || B"`
	Fixed      map[string]bool `json:"fixed,omitempty"`
}

type VariablesResponse struct {
	Variables []string `json:"variables" example:"A,B,C"`
}

// TruthTableResponse documents the row array returned by the truth table
// endpoint.
type TruthTableResponse []truthtable.Row

type SimplifyResponse struct {
	Input      string          `json:"input" example:"!!A & 1"`
	Simplified string          `json:"simplified" example:"A"`
	Steps      []simplify.Step `json:"steps"`
	Passes     int             `json:"passes" example:"2"`
}

type ClassifyResponse struct {
	Kind           sat.Kind              `json:"kind" enums:"tautology,contradiction,contingent"`
	Satisfiable    bool                  `json:"satisfiable"`
	Tautology      bool                  `json:"tautology"`
	Witness        []truthtable.Variable `json:"witness,omitempty"`
	Counterexample []truthtable.Variable `json:"counterexample,omitempty"`
}

type ErrorResponse struct {
	Title string `json:"title,omitempty" example:"validation error"`
	Error string `json:"error" example:"invalid expression: syntax error at position 4: expected variable, literal, NOT or '(', found end of input"`
}

func NewSimplifyResponse(res *simplify.Result) SimplifyResponse {
	steps := res.Steps
	if steps == nil {
		steps = []simplify.Step{}
	}
	return SimplifyResponse{
		Input:      res.Input,
		Simplified: res.Simplified,
		Steps:      steps,
		Passes:     res.Passes,
	}
}

func NewClassifyResponse(c *sat.Classification) ClassifyResponse {
	return ClassifyResponse{
		Kind:           c.Kind,
		Satisfiable:    c.Satisfiable,
		Tautology:      c.Tautology,
		Witness:        c.Witness,
		Counterexample: c.Counterexample,
	}
}
