package drafts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-describer/internal/shared/server/middleware"
)

func newDraftRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Identity())
	NewHandler(newTestService()).RegisterRoutes(api)
	return router
}

func doRequest(router http.Handler, method, path, guest, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if guest != "" {
		req.Header.Set("X-Guest-Id", guest)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDraftLifecycle(t *testing.T) {
	router := newDraftRouter(t)

	resp := doRequest(router, http.MethodGet, "/api/v1/drafts/current", "abc", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doRequest(router, http.MethodPut, "/api/v1/drafts/current", "abc",
		`{"productName":"Lamp","keyFeatures":"- Bright\n- Warm","toneOfVoice":null}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var saved Draft
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &saved))
	assert.Equal(t, "Lamp", saved.Fields["productName"])
	assert.Equal(t, "- Bright\n- Warm", saved.Fields["keyFeatures"])
	assert.Equal(t, "", saved.Fields["toneOfVoice"])

	resp = doRequest(router, http.MethodGet, "/api/v1/drafts/current", "other", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doRequest(router, http.MethodDelete, "/api/v1/drafts/current", "abc", "")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = doRequest(router, http.MethodGet, "/api/v1/drafts/current", "abc", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDraftSaveRejectsMalformedBody(t *testing.T) {
	router := newDraftRouter(t)

	resp := doRequest(router, http.MethodPut, "/api/v1/drafts/current", "abc", `{"productName": 12}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(router, http.MethodPut, "/api/v1/drafts/current", "abc", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDraftRoutesRequireIdentity(t *testing.T) {
	router := newDraftRouter(t)

	resp := doRequest(router, http.MethodGet, "/api/v1/drafts/current", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
