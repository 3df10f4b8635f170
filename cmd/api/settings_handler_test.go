package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSettingsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/settings/ollama", GetOllamaSettings)
	r.PUT("/api/settings/ollama", UpdateOllamaSettings)
	r.POST("/api/settings/ollama/test", TestOllamaConnection)
	return r
}

func TestOllamaSettingsRoundTrip(t *testing.T) {
	InitRuntimeConfig("http://localhost:11434", "llama3")
	r := newSettingsRouter()

	req := httptest.NewRequest("GET", "/api/settings/ollama", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var settings struct {
		BaseURL string `json:"ollama_base_url"`
		Model   string `json:"ollama_model"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if settings.BaseURL != "http://localhost:11434" || settings.Model != "llama3" {
		t.Fatalf("settings = %+v, want seeded values", settings)
	}

	// Update the base URL only; the model must survive
	body := `{"ollama_base_url": "http://ollama.internal:11434"}`
	req = httptest.NewRequest("PUT", "/api/settings/ollama", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if GetRuntimeOllamaBaseURL() != "http://ollama.internal:11434" {
		t.Fatalf("base URL = %q, update did not take effect", GetRuntimeOllamaBaseURL())
	}
	if GetRuntimeOllamaModel() != "llama3" {
		t.Fatalf("model = %q, want llama3 preserved", GetRuntimeOllamaModel())
	}
}

func TestUpdateOllamaSettingsRequiresBaseURL(t *testing.T) {
	InitRuntimeConfig("http://localhost:11434", "llama3")
	r := newSettingsRouter()

	req := httptest.NewRequest("PUT", "/api/settings/ollama", strings.NewReader(`{"ollama_model": "mistral"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestOllamaConnectionUnreachableMapsTo503(t *testing.T) {
	InitRuntimeConfig("http://localhost:11434", "llama3")
	r := newSettingsRouter()

	body := `{"ollama_base_url": "http://127.0.0.1:1"}`
	req := httptest.NewRequest("POST", "/api/settings/ollama/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
