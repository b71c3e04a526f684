package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/RacoonMediaServer/rms-gallery/internal/model"
	"github.com/RacoonMediaServer/rms-gallery/internal/service/builds"
	"github.com/RacoonMediaServer/rms-gallery/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCatalog struct {
	mu       sync.Mutex
	c        model.Catalog
	readOnly bool
}

func (f *fakeCatalog) Snapshot() model.Catalog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.c.Clone()
}

func (f *fakeCatalog) Update(ctx context.Context, c model.Catalog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.Name = f.c.Name
	f.c = c.Clone()
	return nil
}

func (f *fakeCatalog) IsReadOnly() bool {
	return f.readOnly
}

type testEnv struct {
	root    string
	catalog *fakeCatalog
	server  *Server
}

func newTestEnv(t *testing.T, c model.Catalog, readOnly bool) *testEnv {
	root := t.TempDir()
	media, err := storage.NewManager(root)
	require.NoError(t, err)

	cat := &fakeCatalog{c: c, readOnly: readOnly}
	return &testEnv{
		root:    root,
		catalog: cat,
		server: NewServer(Settings{
			Builds:     builds.NewService(builds.Settings{Catalog: cat}),
			Catalog:    cat,
			Media:      media,
			EagerTiles: 1,
		}),
	}
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.server.Handler().ServeHTTP(rr, req)
	return rr
}

type mediaBody struct {
	Build  string `json:"build"`
	Policy string `json:"policy"`
	Items  []struct {
		Kind  string `json:"kind"`
		Path  string `json:"path"`
		Label string `json:"label"`
		URL   string `json:"url"`
	} `json:"items"`
}

func (e *testEnv) media(t *testing.T, target string) mediaBody {
	rr := e.do("GET", target, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body mediaBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

var sampleCatalog = model.Catalog{
	Name:     "main",
	Priority: []string{"mum nd tiwa.jpg"},
	Base:     []string{"IMG-20250809-WA0007.jpg", "VID-20250809-WA0003.mp4", "mum nd tiwa.jpg"},
	Policy:   model.PolicyPriorityFirst,
}

func TestServer_Health(t *testing.T) {
	e := newTestEnv(t, model.Catalog{}, true)
	rr := e.do("GET", "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestServer_ApiMedia(t *testing.T) {
	e := newTestEnv(t, sampleCatalog, true)

	body := e.media(t, "/api/media")
	require.NotEmpty(t, body.Build)
	assert.Equal(t, "priority-first", body.Policy)
	require.Len(t, body.Items, 3)

	assert.Equal(t, "mum nd tiwa.jpg", body.Items[0].Path)
	assert.Equal(t, "mum nd tiwa", body.Items[0].Label)
	assert.Equal(t, "/media/mum%20nd%20tiwa.jpg", body.Items[0].URL)
	assert.Equal(t, "image", body.Items[1].Kind)
	assert.Equal(t, "video", body.Items[2].Kind)
	assert.Equal(t, "VID 20250809 WA0003", body.Items[2].Label)

	same := e.media(t, "/api/media?build="+body.Build)
	assert.Equal(t, body, same)

	fresh := e.media(t, "/api/media?build=expired")
	assert.NotEqual(t, body.Build, fresh.Build)
}

func TestServer_GalleryPage(t *testing.T) {
	e := newTestEnv(t, sampleCatalog, true)
	rr := e.do("GET", "/", "")
	require.Equal(t, http.StatusOK, rr.Code)

	page := rr.Body.String()
	assert.Contains(t, page, `data-index="0"`)
	assert.Contains(t, page, `data-index="2"`)
	assert.NotContains(t, page, `data-index="3"`)
	assert.Equal(t, 1, strings.Count(page, `fetchpriority="high"`))
	assert.Equal(t, 1, strings.Count(page, `fetchpriority="low"`))
	assert.Equal(t, 1, strings.Count(page, `<span class="badge">Video</span>`))
	assert.Contains(t, page, `data-src="/media/mum%20nd%20tiwa.jpg"`)
	assert.Contains(t, page, `alt="mum nd tiwa"`)
	assert.Contains(t, page, `loading="lazy"`)
	assert.Contains(t, page, `rootMargin: '300px 0px'`)
}

func TestServer_ViewPage(t *testing.T) {
	e := newTestEnv(t, sampleCatalog, true)
	id := e.media(t, "/api/media").Build

	rr := e.do("GET", "/view/"+id+"/0", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `href="/view/`+id+`/2"`)
	assert.Contains(t, rr.Body.String(), `href="/view/`+id+`/1"`)
	assert.Contains(t, rr.Body.String(), `(1 / 3)`)

	rr = e.do("GET", "/view/"+id+"/2", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `<video src="/media/VID-20250809-WA0003.mp4"`)
	assert.Contains(t, rr.Body.String(), `rel="next" href="/view/`+id+`/0"`)

	for _, target := range []string{"/view/" + id + "/3", "/view/" + id + "/-1", "/view/" + id + "/x", "/view/unknown/0"} {
		assert.Equal(t, http.StatusNotFound, e.do("GET", target, "").Code, target)
	}
}

func TestServer_CatalogReadOnly(t *testing.T) {
	e := newTestEnv(t, sampleCatalog, true)

	rr := e.do("GET", "/api/catalog", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"readOnly":true`)
	assert.Contains(t, rr.Body.String(), `"policy":"priority-first"`)
	assert.NotContains(t, rr.Body.String(), `updatedAt`)

	rr = e.do("PUT", "/api/catalog", `{"base":["a.jpg"]}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"read-only"}`, rr.Body.String())
}

func TestServer_CatalogUpdate(t *testing.T) {
	e := newTestEnv(t, sampleCatalog, false)

	type testCase struct {
		body   string
		code   int
		policy model.Policy
	}
	testCases := []testCase{
		{body: `{"policy":"random"}`, code: http.StatusBadRequest, policy: model.PolicyPriorityFirst},
		{body: `{"base":`, code: http.StatusBadRequest, policy: model.PolicyPriorityFirst},
		{body: `{"priority":["b.jpg"],"base":["a.jpg"]}`, code: http.StatusOK, policy: model.PolicyPriorityFirst},
		{body: `{"priority":["b.jpg"],"base":["a.jpg"],"policy":"interleaved"}`, code: http.StatusOK, policy: model.PolicyInterleaved},
	}

	for i, tc := range testCases {
		rr := e.do("PUT", "/api/catalog", tc.body)
		assert.Equal(t, tc.code, rr.Code, "Test %d failed", i)
		assert.Equal(t, tc.policy, e.catalog.Snapshot().Policy, "Test %d failed", i)
	}

	c := e.catalog.Snapshot()
	assert.Equal(t, "main", c.Name)
	assert.Equal(t, []string{"b.jpg"}, c.Priority)
	assert.Equal(t, []string{"a.jpg"}, c.Base)
}

func TestServer_Media(t *testing.T) {
	e := newTestEnv(t, model.Catalog{}, true)
	require.NoError(t, os.WriteFile(filepath.Join(e.root, "a b.jpg"), []byte{0xFF, 0xD8, 0xFF, 0xDB}, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(e.root, "album"), 0o755))

	rr := e.do("GET", "/media/a%20b.jpg", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))

	for _, target := range []string{"/media/missing.jpg", "/media/album", "/media/../secret.jpg"} {
		assert.Equal(t, http.StatusNotFound, e.do("GET", target, "").Code, target)
	}
}

func TestMediaURL(t *testing.T) {
	assert.Equal(t, "/media/a.jpg", mediaURL("a.jpg"))
	assert.Equal(t, "/media/2025/mum%20nd%20tiwa.jpg", mediaURL("/2025/mum nd tiwa.jpg"))
	assert.Equal(t, "https://cdn.example.org/a.jpg", mediaURL("https://cdn.example.org/a.jpg"))
}
