package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/pokemon-api/internal/config"
	"github.com/deppfellow/pokemon-api/internal/errs"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
	}
}

func handleError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, "/api/pokemon", nil), rec)

	NewGlobalMiddlewares(newServer()).GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "application error",
			err:         errs.NewNotFoundError("Owner not found", false, nil),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Owner not found",
		},
		{
			name:        "unique violation",
			err:         &pgconn.PgError{Code: "23505", TableName: "countries", ConstraintName: "countries_name_key"},
			wantStatus:  http.StatusConflict,
			wantCode:    "COUNTRY_ALREADY_EXISTS",
			wantMessage: "A Country with this Name already exists",
		},
		{
			name:        "unknown route",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Route not found",
		},
		{
			name:        "method not allowed",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "METHOD_NOT_ALLOWED",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error is not leaked",
			err:         errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, http.MethodGet, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestGlobalErrorHandlerHead(t *testing.T) {
	rec, _ := handleError(t, http.MethodHead, errs.NewNotFoundError("Pokemon not found", false, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestEnhanceContextStoresLogger(t *testing.T) {
	s := newServer()
	logger := zerolog.New(io.Discard)
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/", func(c echo.Context) error {
		assert.NotNil(t, c.Get(LoggerKey))
		assert.NotEqual(t, zerolog.Disabled, zerolog.Ctx(c.Request().Context()).GetLevel())
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}
