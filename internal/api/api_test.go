package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	states_module "github.com/ethanbaker/states-api/internal/api/modules/states"
	funfact_store "github.com/ethanbaker/states-api/internal/stores/funfact"
	"github.com/ethanbaker/states-api/pkg/catalog"
	"github.com/ethanbaker/states-api/pkg/funfact"
	"github.com/ethanbaker/states-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, values map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	require.NoError(t, err)

	cfg := utils.NewConfig(values)
	return NewEngine(cfg, states_module.NewStatesService(cat, funfact_store.NewInMemoryStore()))
}

func serve(engine *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRoutesMountedTwice(t *testing.T) {
	engine := newTestEngine(t, nil)

	for _, prefix := range []string{"", "/api"} {
		w := serve(engine, http.MethodGet, prefix+"/states/GA/capital", "", nil)
		assert.Equal(t, http.StatusOK, w.Code, prefix)
		assert.JSONEq(t, `{"state": "Georgia", "capital": "Atlanta"}`, w.Body.String())

		w = serve(engine, http.MethodGet, prefix+"/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code, prefix)
	}
}

func TestPrefixesShareStore(t *testing.T) {
	engine := newTestEngine(t, nil)

	w := serve(engine, http.MethodPost, "/api/states/GA/funfact", `{"funfacts": ["Peaches"]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(engine, http.MethodGet, "/states/GA/funfact", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"funfact": "Peaches"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	engine := newTestEngine(t, nil)

	w := serve(engine, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIKeyGuardsWrites(t *testing.T) {
	engine := newTestEngine(t, map[string]string{"API_KEY": "secret"})

	w := serve(engine, http.MethodPost, "/states/GA/funfact", `{"funfacts": ["Peaches"]}`, nil)
	assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest)
	assert.NotEqual(t, http.StatusCreated, w.Code)

	w = serve(engine, http.MethodPost, "/states/GA/funfact", `{"funfacts": ["Peaches"]}`, map[string]string{"X-API-KEY": "wrong"})
	assert.NotEqual(t, http.StatusCreated, w.Code)

	// Reads stay open
	w = serve(engine, http.MethodGet, "/states/GA", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "funfacts")

	w = serve(engine, http.MethodPost, "/states/GA/funfact", `{"funfacts": ["Peaches"]}`, map[string]string{"X-API-KEY": "secret"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	engine := newTestEngine(t, map[string]string{"CORS_ALLOWED_ORIGINS": "http://client.test"})

	// httptest requests target example.com, so the origin must differ to count as cross-origin
	w := serve(engine, http.MethodOptions, "/states", "", map[string]string{
		"Origin":                        "http://client.test",
		"Access-Control-Request-Method": http.MethodPatch,
	})

	assert.Less(t, w.Code, http.StatusBadRequest)
	assert.Equal(t, "http://client.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(engine, http.MethodOptions, "/states", "", map[string]string{
		"Origin":                        "http://other.test",
		"Access-Control-Request-Method": http.MethodPatch,
	})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

// closeRecorder is an in-memory store that records whether Close was called
type closeRecorder struct {
	*funfact_store.InMemoryStore
	closed bool
}

func (s *closeRecorder) Close() error {
	s.closed = true
	return nil
}

var _ funfact.StoreInterface = (*closeRecorder)(nil)

func TestRunServerClosesStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	require.NoError(t, err)

	store := &closeRecorder{InMemoryStore: funfact_store.NewInMemoryStore()}
	service := states_module.NewStatesService(cat, store)
	engine := NewEngine(utils.NewConfig(nil), service)

	err = runServer(engine, "127.0.0.1:-1", service)
	assert.Error(t, err)
	assert.True(t, store.closed)
}
