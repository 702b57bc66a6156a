package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/logicka/internal/apperr"
	"github.com/DjordjeVuckovic/logicka/internal/engine"
	"github.com/DjordjeVuckovic/logicka/internal/parser"
	"github.com/DjordjeVuckovic/logicka/internal/token"
	"github.com/DjordjeVuckovic/logicka/internal/truthtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("syntax error at position 3")
	err := apperr.NewValidationWrap("invalid expression", inner)

	if err.Error() != "invalid expression: syntax error at position 3" {
		t.Errorf("expected 'invalid expression: syntax error at position 3', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("unbalanced parentheses")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("engine error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "unbalanced parentheses" {
		t.Errorf("expected 'unbalanced parentheses', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("solver returned no answer")
	wrapped := fmt.Errorf("engine error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestValidationError_ReachesEngineCauses(t *testing.T) {
	ctx := context.Background()
	e := engine.New(engine.WithMaxFreeVariables(2))

	t.Run("syntax error", func(t *testing.T) {
		_, err := e.ExtractVariables(ctx, "A &")
		err = fmt.Errorf("handler: %w", err)

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "invalid expression", ve.Message)

		var synErr *parser.SyntaxError
		require.ErrorAs(t, err, &synErr)
		assert.Equal(t, 3, synErr.Pos)
		assert.Equal(t, token.EOF, synErr.Found)
	})

	t.Run("lexical error", func(t *testing.T) {
		_, err := e.Simplify(ctx, "A # B")

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "invalid expression", ve.Message)

		var lexErr *token.LexicalError
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, 2, lexErr.Pos)
		assert.Equal(t, '#', lexErr.Char)
	})

	t.Run("unknown fixed variable", func(t *testing.T) {
		_, err := e.CalculateTruthTable(ctx, "A | B", map[string]bool{"Z": true})

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "invalid fixed values", ve.Message)

		var unknown *truthtable.UnknownVariableError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, []string{"Z"}, unknown.Names)
	})

	t.Run("too many variables", func(t *testing.T) {
		_, err := e.CalculateTruthTable(ctx, "A | B | C", nil)

		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "truth table too large", ve.Message)

		var tooMany *truthtable.TooManyVariablesError
		require.ErrorAs(t, err, &tooMany)
		assert.Equal(t, 3, tooMany.Free)
		assert.Equal(t, 2, tooMany.Limit)
	})
}
