package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New().Register(r.Group("/api/v1/sections"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestCatalog(t *testing.T) {
	w := get(newTestRouter(), "/api/v1/sections")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Sections []struct {
			Name  string `json:"name"`
			Path  string `json:"path"`
			Index int    `json:"index"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sections, 4)
	assert.Equal(t, "home", resp.Sections[0].Name)
	assert.Equal(t, "/contact", resp.Sections[3].Path)
}

func TestLocate(t *testing.T) {
	w := get(newTestRouter(), "/api/v1/sections/locate?offset=1300&viewport=800")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"section":"projects"`)
	assert.Contains(t, w.Body.String(), `"path":"/projects"`)
}

func TestLocate_BadOffset(t *testing.T) {
	w := get(newTestRouter(), "/api/v1/sections/locate?offset=abc&viewport=800")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTarget(t *testing.T) {
	w := get(newTestRouter(), "/api/v1/sections/target?path=/about&viewport=800")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"offset":800`)
}

func TestTarget_UnknownPathResolvesHome(t *testing.T) {
	w := get(newTestRouter(), "/api/v1/sections/target?path=/bogus&viewport=800")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"offset":0`)
	assert.Contains(t, w.Body.String(), `"section":"home"`)
}
