package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	pages map[string][]byte
	bumps []string
}

func newMemCache() *memCache { return &memCache{pages: make(map[string][]byte)} }

func (m *memCache) GetPage(_ context.Context, kind, key string) ([]byte, bool) {
	b, ok := m.pages[kind+"|"+key]
	return b, ok
}
func (m *memCache) SetPage(_ context.Context, kind, key string, body []byte) {
	m.pages[kind+"|"+key] = body
}
func (m *memCache) Bump(_ context.Context, kind string) { m.bumps = append(m.bumps, kind) }

func listRouter(cache *memCache, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/things", ListCache(cache, "thing"), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []string{"a"}})
	})
	r.GET("/broken", ListCache(cache, "thing"), func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestListCache_MissThenHit(t *testing.T) {
	cache := newMemCache()
	hits := 0
	r := listRouter(cache, &hits)

	first := get(r, "/things?page=1&limit=10")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, hits)

	second := get(r, "/things?page=1&limit=10")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, hits, "second request is served from cache")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestListCache_KeyIncludesQuery(t *testing.T) {
	cache := newMemCache()
	hits := 0
	r := listRouter(cache, &hits)

	get(r, "/things?page=1")
	get(r, "/things?page=2")
	assert.Equal(t, 2, hits, "different queries are cached separately")
}

func TestListCache_SkipsNon200(t *testing.T) {
	cache := newMemCache()
	hits := 0
	r := listRouter(cache, &hits)

	get(r, "/broken")
	assert.Empty(t, cache.pages, "error responses are never cached")
}
