package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/pokemon-api/internal/config"
	"github.com/deppfellow/pokemon-api/internal/errs"
	"github.com/deppfellow/pokemon-api/internal/handler"
	"github.com/deppfellow/pokemon-api/internal/repository"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/deppfellow/pokemon-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Checks = nil

	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			CORSAllowedOrigins: []string{"*"},
		},
		Cache:         &config.CacheConfig{Enabled: false},
		Observability: obs,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) (*echo.Echo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	logger := zerolog.Nop()
	s := &server.Server{Config: cfg, Logger: &logger}

	services, err := service.NewService(s, repository.New(mock))
	require.NoError(t, err)

	return NewRouter(s, handler.NewHandlers(s, services)), mock
}

func do(r *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func expectPokemonExists(mock pgxmock.PgxPoolIface, id int64, found bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM pokemon WHERE id = $1)`)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(found))
}

func TestGetPokemons(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	birth := time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, birth_date FROM pokemon ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "birth_date"}).
			AddRow(int64(1), "Pikachu", birth).
			AddRow(int64(2), "Eevee", birth))

	rec := do(r, http.MethodGet, "/api/pokemon", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id": 1, "name": "Pikachu", "birthDate": "1996-02-27T00:00:00Z"},
		{"id": 2, "name": "Eevee", "birthDate": "1996-02-27T00:00:00Z"}
	]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPokemonsEmptyIsArray(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, birth_date FROM pokemon ORDER BY id`)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "birth_date"}))

	rec := do(r, http.MethodGet, "/api/pokemon", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPokemonNotFound(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	expectPokemonExists(mock, 99, false)

	rec := do(r, http.MethodGet, "/api/pokemon/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Pokemon not found", decodeError(t, rec).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZeroIDIsNotFound(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		table   string
		message string
	}{
		{name: "get pokemon", method: http.MethodGet, target: "/api/pokemon/0", table: "pokemon", message: "Pokemon not found"},
		{name: "get category", method: http.MethodGet, target: "/api/category/0", table: "categories", message: "Category not found"},
		{name: "delete reviewer", method: http.MethodDelete, target: "/api/reviewer/0", table: "reviewers", message: "Reviewer not found"},
		{name: "update country", method: http.MethodPut, target: "/api/country/0", body: `{"id": 0, "name": "Kanto"}`, table: "countries", message: "Country not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := newTestRouter(t, testConfig())

			mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM ` + tt.table + ` WHERE id = $1)`)).
				WithArgs(int64(0)).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

			rec := do(r, tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetPokemonBadID(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	rec := do(r, http.MethodGet, "/api/pokemon/abc", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePokemonBindsQuery(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM pokemon WHERE upper(btrim(name))`)).
		WithArgs("Pikachu").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM owners WHERE id = $1)`)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`)).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO pokemon (name, birth_date)`)).
		WithArgs("Pikachu", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pokemon_owners`)).
		WithArgs(int64(10), int64(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO pokemon_categories`)).
		WithArgs(int64(10), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	rec := do(r, http.MethodPost, "/api/pokemon?ownerId=1&categoryId=2",
		`{"name": "Pikachu", "birthDate": "1996-02-27T00:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `"Successfully created"`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePokemonMissingQuery(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	rec := do(r, http.MethodPost, "/api/pokemon", `{"name": "Pikachu"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	fields := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"ownerId", "categoryId"}, fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategoryEmptyBody(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	rec := do(r, http.MethodPost, "/api/category", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategoryDuplicate(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE upper(btrim(name))`)).
		WithArgs("Electric").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	rec := do(r, http.MethodPost, "/api/category", `{"name": "Electric"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Category already exists", decodeError(t, rec).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePokemonPathMismatch(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	rec := do(r, http.MethodPut, "/api/pokemon/1", `{"id": 2, "name": "Raichu"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	rec := do(r, http.MethodDelete, "/api/category/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwnersOfAPokemonUsesPokemonID(t *testing.T) {
	r, mock := newTestRouter(t, testConfig())

	expectPokemonExists(mock, 7, false)

	rec := do(r, http.MethodGet, "/api/owner/7/owners", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Pokemon not found", decodeError(t, rec).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	rec := do(r, http.MethodGet, "/api/trainers", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		allowed int
	}{
		{name: "one per second", rate: 1, allowed: 1},
		{name: "fractional rate admits one", rate: 0.5, allowed: 1},
		{name: "burst covers one second", rate: 3, allowed: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Server.RateLimit = tt.rate

			r, mock := newTestRouter(t, cfg)

			for i := 0; i < tt.allowed; i++ {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, birth_date FROM pokemon ORDER BY id`)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "name", "birth_date"}))
			}

			for i := 0; i < tt.allowed; i++ {
				rec := do(r, http.MethodGet, "/api/pokemon", "")
				require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
			}

			denied := do(r, http.MethodGet, "/api/pokemon", "")
			require.Equal(t, http.StatusTooManyRequests, denied.Code)
			assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, denied).Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStatusWithoutChecks(t *testing.T) {
	r, _ := newTestRouter(t, testConfig())

	rec := do(r, http.MethodGet, "/status", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
