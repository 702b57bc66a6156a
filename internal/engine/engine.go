package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/logicka/internal/apperr"
	"github.com/DjordjeVuckovic/logicka/internal/ast"
	"github.com/DjordjeVuckovic/logicka/internal/parser"
	"github.com/DjordjeVuckovic/logicka/internal/sat"
	"github.com/DjordjeVuckovic/logicka/internal/simplify"
	"github.com/DjordjeVuckovic/logicka/internal/token"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
)

// CanaryExpression must always classify as a contradiction.
const CanaryExpression = "A & !A"

type Option func(*Engine)

func WithMaxFreeVariables(n int) Option {
	return func(e *Engine) {
		e.generator = truthtable.NewGenerator(truthtable.WithMaxFreeVariables(n))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine exposes the expression operations. Every call is independent, so a
// single Engine can serve concurrent requests.
type Engine struct {
	generator *truthtable.Generator
	logger    *slog.Logger
}

func New(opts ...Option) *Engine {
	e := &Engine{
		generator: truthtable.NewGenerator(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) MaxFreeVariables() int {
	return e.generator.MaxFreeVariables()
}

// ExtractVariables returns the distinct variables of text in order of first
// occurrence.
func (e *Engine) ExtractVariables(ctx context.Context, text string) ([]string, error) {
	node, err := e.parse(ctx, text)
	if err != nil {
		return nil, err
	}
	return ast.CollectVariables(node), nil
}

// CalculateTruthTable returns the rows of the truth table of text with the
// variables of fixed pinned to their values.
func (e *Engine) CalculateTruthTable(ctx context.Context, text string, fixed map[string]bool) ([]truthtable.Row, error) {
	table, err := e.Table(ctx, text, fixed)
	if err != nil {
		return nil, err
	}
	return table.Rows, nil
}

// Table is CalculateTruthTable with the variable partition kept.
func (e *Engine) Table(ctx context.Context, text string, fixed map[string]bool) (*truthtable.Table, error) {
	node, err := e.parse(ctx, text)
	if err != nil {
		return nil, err
	}

	table, err := e.generator.Generate(node, fixed)
	if err != nil {
		return nil, e.wrap(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("truth table: %w", err)
	}

	e.logger.Debug("truth table calculated",
		"variables", len(table.Variables),
		"free", len(table.Free),
		"rows", len(table.Rows),
	)
	return table, nil
}

func (e *Engine) Simplify(ctx context.Context, text string) (*simplify.Result, error) {
	node, err := e.parse(ctx, text)
	if err != nil {
		return nil, err
	}

	res := simplify.New(simplify.WithLogger(e.logger)).Simplify(node)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("simplify: %w", err)
	}
	return res, nil
}

func (e *Engine) Classify(ctx context.Context, text string, fixed map[string]bool) (*sat.Classification, error) {
	node, err := e.parse(ctx, text)
	if err != nil {
		return nil, err
	}

	res, err := sat.Classify(node, fixed)
	if err != nil {
		return nil, e.wrap(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return res, nil
}

// SelfCheck classifies CanaryExpression and fails unless it is a
// contradiction.
func (e *Engine) SelfCheck(ctx context.Context) error {
	res, err := e.Classify(ctx, CanaryExpression, nil)
	if err != nil {
		return err
	}
	if res.Kind != sat.Contradiction {
		return fmt.Errorf("canary %q classified as %s", CanaryExpression, res.Kind)
	}
	return nil
}

func (e *Engine) parse(ctx context.Context, text string) (ast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	node, err := parser.ParseString(text)
	if err != nil {
		return nil, e.wrap(err)
	}
	return node, nil
}

// wrap turns errors caused by the input into validation errors and logs the
// rest.
func (e *Engine) wrap(err error) error {
	var (
		lexErr     *token.LexicalError
		synErr     *parser.SyntaxError
		unknownErr *truthtable.UnknownVariableError
		tooMany    *truthtable.TooManyVariablesError
	)

	switch {
	case errors.As(err, &lexErr), errors.As(err, &synErr):
		return apperr.NewValidationWrap("invalid expression", err)
	case errors.As(err, &unknownErr):
		return apperr.NewValidationWrap("invalid fixed values", err)
	case errors.As(err, &tooMany):
		return apperr.NewValidationWrap("truth table too large", err)
	default:
		e.logger.Error("expression engine failure", "error", err)
		return err
	}
}
