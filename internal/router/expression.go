package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/logicka/internal/apperr"
	"github.com/DjordjeVuckovic/logicka/internal/dto"
	"github.com/DjordjeVuckovic/logicka/internal/sat"
	"github.com/DjordjeVuckovic/logicka/internal/simplify"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/labstack/echo/v4"
)

// ExpressionEngine is implemented by engine.Engine.
type ExpressionEngine interface {
	ExtractVariables(ctx context.Context, text string) ([]string, error)
	CalculateTruthTable(ctx context.Context, text string, fixed map[string]bool) ([]truthtable.Row, error)
	Simplify(ctx context.Context, text string) (*simplify.Result, error)
	Classify(ctx context.Context, text string, fixed map[string]bool) (*sat.Classification, error)
}

type ExpressionRouter struct {
	e      *echo.Echo
	engine ExpressionEngine
}

func NewExpressionRouter(e *echo.Echo, engine ExpressionEngine) *ExpressionRouter {
	return &ExpressionRouter{
		e:      e,
		engine: engine,
	}
}

// ErrMissingExpression is returned for a request body without an expression.
var ErrMissingExpression = apperr.NewValidation("expression is required")

func (r *ExpressionRouter) Bind() {
	v1 := r.e.Group("/api/v1")
	v1.POST("/variables", r.variablesHandler)
	v1.POST("/truth-table", r.truthTableHandler)
	v1.POST("/simplify", r.simplifyHandler)
	v1.POST("/classify", r.classifyHandler)
}

// variablesHandler godoc
// @Summary Extract variables
// @Description Returns the distinct variables of an expression in order of first occurrence
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.VariablesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/variables [post]
func (r *ExpressionRouter) variablesHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := bindExpression(c, &req, &req.Expression); err != nil {
		return err
	}

	vars, err := r.engine.ExtractVariables(c.Request().Context(), req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.VariablesResponse{Variables: vars})
}

// truthTableHandler godoc
// @Summary Calculate truth table
// @Description Enumerates every assignment of the free variables in ascending binary order, first variable most significant. Fixed variables keep their value in every row.
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.TruthTableRequest true "Expression and fixed values"
// @Success 200 {array} truthtable.Row
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/truth-table [post]
func (r *ExpressionRouter) truthTableHandler(c echo.Context) error {
	var req dto.TruthTableRequest
	if err := bindExpression(c, &req, &req.Expression); err != nil {
		return err
	}

	rows, err := r.engine.CalculateTruthTable(c.Request().Context(), req.Expression, req.Fixed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TruthTableResponse(rows))
}

// simplifyHandler godoc
// @Summary Simplify expression
// @Description Rewrites an expression with boolean algebra laws until no rule applies
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.SimplifyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/simplify [post]
func (r *ExpressionRouter) simplifyHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := bindExpression(c, &req, &req.Expression); err != nil {
		return err
	}

	res, err := r.engine.Simplify(c.Request().Context(), req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewSimplifyResponse(res))
}

// classifyHandler godoc
// @Summary Classify expression
// @Description Decides whether an expression is a tautology, a contradiction or contingent, with a satisfying and a falsifying assignment when they exist
// @Tags expressions
// @Accept json
// @Produce json
// @Param request body dto.TruthTableRequest true "Expression and fixed values"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/classify [post]
func (r *ExpressionRouter) classifyHandler(c echo.Context) error {
	var req dto.TruthTableRequest
	if err := bindExpression(c, &req, &req.Expression); err != nil {
		return err
	}

	res, err := r.engine.Classify(c.Request().Context(), req.Expression, req.Fixed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewClassifyResponse(res))
}

// bindExpression binds the body into req and requires a non-blank
// expression.
func bindExpression(c echo.Context, req any, expression *string) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(*expression) == "" {
		return ErrMissingExpression
	}
	return nil
}
