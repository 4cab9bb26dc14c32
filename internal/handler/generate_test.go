package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slidecraft/backend/internal/generator"
	"slidecraft/backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/generate", HandleGenerate)
	r.GET("/api/presentations/:id", HandleGetPresentation)
	r.GET("/api/presentations/:id/download", HandleDownloadPresentation)
	r.DELETE("/api/presentations/:id", HandleDeletePresentation)
	return r
}

func useTestGenerator(t *testing.T) {
	t.Helper()
	gen, err := generator.New(generator.Config{OutputDir: t.TempDir()})
	require.NoError(t, err)
	SetGenerator(gen)
	t.Cleanup(func() { SetGenerator(nil) })
}

func postGenerate(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	code, _ := body["code"].(string)
	return code
}

func TestGenerateRejectsMissingTopic(t *testing.T) {
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"sections": []string{"A", "B", "C"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w))
}

func TestGenerateRejectsShortTopic(t *testing.T) {
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "ab", "sections": []string{"A", "B", "C"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TOPIC", decodeError(t, w))
}

func TestGenerateRejectsShortMultibyteTopic(t *testing.T) {
	// Two characters even though the byte length exceeds the minimum
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "日本", "sections": []string{"A", "B", "C"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TOPIC", decodeError(t, w))
}

func TestGenerateAcceptsMultibyteTopic(t *testing.T) {
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "日本語", "sections": []string{"A", "B", "C"}})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGenerateRejectsMissingSections(t *testing.T) {
	// A missing field fails the required tag, not the count bounds
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "Cloud Security"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w))
}

func TestGenerateRejectsTooFewSections(t *testing.T) {
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "Cloud Security", "sections": []string{"A", "B"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SECTIONS", decodeError(t, w))
}

func TestGenerateRejectsTooManySections(t *testing.T) {
	useTestGenerator(t)
	sections := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "Cloud Security", "sections": sections})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SECTIONS", decodeError(t, w))
}

func TestGenerateRejectsBlankSection(t *testing.T) {
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "Cloud Security", "sections": []string{"A", "   ", "C"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_SECTIONS", decodeError(t, w))
}

func TestGenerateRejectsShortAPIKey(t *testing.T) {
	useTestGenerator(t)
	w := postGenerate(t, newTestRouter(), gin.H{
		"topic":    "Cloud Security",
		"sections": []string{"A", "B", "C"},
		"api_key":  "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_API_KEY", decodeError(t, w))
}

func TestGenerateUnavailableWithoutGenerator(t *testing.T) {
	SetGenerator(nil)
	w := postGenerate(t, newTestRouter(), gin.H{"topic": "Cloud Security", "sections": []string{"A", "B", "C"}})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, w))
}

// Full request cycle on fallback content: generate, fetch metadata,
// download, then discard.
func TestGenerateDownloadAndReset(t *testing.T) {
	useTestGenerator(t)
	r := newTestRouter()

	w := postGenerate(t, r, gin.H{
		"topic":    "Cloud Security",
		"sections": []string{"Overview", "Threats", "Defenses"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.PresentationMetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.SlideCount)
	assert.Greater(t, resp.FileSize, int64(0))
	assert.Contains(t, resp.Filename, "professional_Cloud_Security_")
	require.NotEmpty(t, resp.ID)

	// Metadata lookup
	req := httptest.NewRequest(http.MethodGet, "/api/presentations/"+resp.ID, nil)
	mw := httptest.NewRecorder()
	r.ServeHTTP(mw, req)
	assert.Equal(t, http.StatusOK, mw.Code)

	// Download has the presentation MIME type
	req = httptest.NewRequest(http.MethodGet, resp.DownloadURL, nil)
	dw := httptest.NewRecorder()
	r.ServeHTTP(dw, req)
	require.Equal(t, http.StatusOK, dw.Code)
	assert.Equal(t, PptxMIME, dw.Header().Get("Content-Type"))
	assert.Equal(t, []byte("PK"), dw.Body.Bytes()[:2])

	// Reset discards the registry entry but not the file
	req = httptest.NewRequest(http.MethodDelete, "/api/presentations/"+resp.ID, nil)
	delw := httptest.NewRecorder()
	r.ServeHTTP(delw, req)
	assert.Equal(t, http.StatusOK, delw.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/presentations/"+resp.ID, nil)
	gw := httptest.NewRecorder()
	r.ServeHTTP(gw, req)
	assert.Equal(t, http.StatusNotFound, gw.Code)
}

func TestDownloadUnknownID(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/presentations/nope/download", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
