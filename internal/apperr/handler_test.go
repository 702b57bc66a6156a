package apperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/logicka/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "validation error",
			err:    apperr.NewValidationWrap("invalid expression", errors.New("syntax error at position 0")),
			status: http.StatusBadRequest,
			body:   `{"error":"invalid expression: syntax error at position 0","title":"validation error"}`,
		},
		{
			name:   "echo http error",
			err:    echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported media type"),
			status: http.StatusUnsupportedMediaType,
			body:   `{"error":"unsupported media type"}`,
		},
		{
			name:   "unexpected error",
			err:    errors.New("variable \"A\" has no assigned value"),
			status: http.StatusInternalServerError,
			body:   `{"error":"internal server error"}`,
		},
	}

	e := echo.New()
	handler := apperr.GlobalErrorHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
