package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-describer/internal/drafts"
	"product-describer/internal/shared/config"
)

const lampForm = `{"productName":"Aurora","productCategory":"Home & Garden",` +
	`"keyFeatures":"- Adjustable brightness\n- Warm light","targetAudience":"late-night readers",` +
	`"toneOfVoice":"Minimalist","descriptionLength":"short"}`

func testConfig() config.Config {
	return config.Config{
		Env:               "dev",
		DraftStore:        config.DraftStoreMemory,
		RateLimitPerSec:   100,
		RateLimitBurst:    100,
		GenerateLimitRate: 100,
		GenerateBurst:     100,
	}
}

func serve(app *App, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "browser-1")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestBuildMemoryEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, isMemory := app.DraftsRepo.(*drafts.MemoryRepo)
	assert.True(t, isMemory)

	resp := serve(app, http.MethodPost, "/api/v1/descriptions", lampForm)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var result struct {
		Description string `json:"description"`
		WordCount   int    `json:"wordCount"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	assert.Equal(t, "Aurora. Home & Garden. Adjustable brightness. Warm light. "+
		"Designed for late-night readers who value simplicity and quality. Nothing more, nothing less.", result.Description)
	assert.Equal(t, 21, result.WordCount)

	resp = serve(app, http.MethodGet, "/api/v1/drafts/current", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"toneOfVoice":"Minimalist"`)
}

func TestBuildHealthIsPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), testConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"ok":true}`, resp.Body.String())
}

func TestBuildServesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), testConfig())
	require.NoError(t, err)

	serve(app, http.MethodPost, "/api/v1/descriptions", lampForm)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "descriptions_generated_total")
}

func TestBuildRedisStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := miniredis.RunT(t)

	cfg := testConfig()
	cfg.DraftStore = config.DraftStoreRedis
	cfg.RedisAddr = srv.Addr()

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, isRedis := app.DraftsRepo.(*drafts.RedisRepo)
	require.True(t, isRedis)

	resp := serve(app, http.MethodPut, "/api/v1/drafts/current", `{"productName":"Aurora"}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.True(t, srv.Exists(drafts.RedisKey("guest:browser-1")))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	hresp := httptest.NewRecorder()
	app.Router.ServeHTTP(hresp, req)
	assert.JSONEq(t, `{"ok":true,"checks":{"redis":"ok"}}`, hresp.Body.String())
}

func TestBuildFallsBackToMemoryInDev(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.DraftStore = config.DraftStorePostgres

	app, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, config.DraftStoreMemory, app.Config.DraftStore)
}

func TestBuildRequiresDatabaseInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env = "production"
	cfg.DraftStore = config.DraftStorePostgres

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}
