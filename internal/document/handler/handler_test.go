package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/internal/document/service"
	"github.com/gogotex/docstore/internal/idgen"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	repo := repository.NewMemoryRepo(repository.WithIDGenerator(idgen.Sequence("doc-")))
	RegisterDocumentRoutes(g, service.NewMemoryService(repo))
	return g
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func decodeDocs(t *testing.T, w *httptest.ResponseRecorder) []document.Document {
	t.Helper()
	var out []document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestDocumentHandler_SaveGet(t *testing.T) {
	g := newRouter()

	// create
	w := do(g, http.MethodPost, "/api/documents", `{"title":"Report-A","content":"hi","author":{"id":"a1","name":"Ann"},"created":"2024-01-10T09:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "doc-1", created.ID)
	require.Equal(t, "Report-A", *created.Title)
	require.Equal(t, "a1", created.Author.ID)

	// update keeps created
	w = do(g, http.MethodPut, "/api/documents", `{"id":"doc-1","title":"Report-B","created":"2030-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// get
	w = do(g, http.MethodGet, "/api/documents/doc-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got document.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Report-B", *got.Title)
	require.Nil(t, got.Content)
	require.True(t, got.Created.Equal(time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)))
}

func TestDocumentHandler_GetMissing(t *testing.T) {
	g := newRouter()
	w := do(g, http.MethodGet, "/api/documents/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_SaveRejectsMalformedJSON(t *testing.T) {
	g := newRouter()
	w := do(g, http.MethodPost, "/api/documents", `{"title":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Search(t *testing.T) {
	g := newRouter()
	for _, body := range []string{
		`{"id":"ra","title":"Report-A","author":{"id":"a1"}}`,
		`{"id":"rb","title":"Report-B","author":{"id":"a2"}}`,
		`{"id":"ma","title":"Memo-A","author":{"id":"a3"}}`,
	} {
		require.Equal(t, http.StatusOK, do(g, http.MethodPost, "/api/documents", body).Code)
	}

	w := do(g, http.MethodPost, "/api/documents/search", `{"titlePrefixes":["Report"],"authorIds":["a1"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	docs := decodeDocs(t, w)
	require.Len(t, docs, 1)
	require.Equal(t, "ra", docs[0].ID)

	// empty body, empty object and empty lists are all unconstrained
	for _, body := range []string{"", `{}`, `{"titlePrefixes":[],"authorIds":null}`} {
		w = do(g, http.MethodPost, "/api/documents/search", body)
		require.Equal(t, http.StatusOK, w.Code, body)
		require.Len(t, decodeDocs(t, w), 3, body)
	}

	w = do(g, http.MethodGet, "/api/documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeDocs(t, w), 3)

	w = do(g, http.MethodPost, "/api/documents/search", `{"titlePrefixes":"Report"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_SearchEmptyStoreReturnsArray(t *testing.T) {
	g := newRouter()
	w := do(g, http.MethodGet, "/api/documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}
