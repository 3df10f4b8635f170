package api

import (
	"net/http"
	"sync"

	"mindjournal-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

// Runtime Ollama settings, readable through the getters that the
// enrichment service is constructed with. Updating them reroutes the
// next enrichment call without a restart.
var (
	ollamaBaseURL string
	ollamaModel   string
	settingsLock  sync.RWMutex
)

// InitRuntimeConfig seeds the runtime settings from static config
func InitRuntimeConfig(baseURL, model string) {
	settingsLock.Lock()
	defer settingsLock.Unlock()
	ollamaBaseURL = baseURL
	ollamaModel = model
}

// GetRuntimeOllamaBaseURL returns the current runtime Ollama base URL
func GetRuntimeOllamaBaseURL() string {
	settingsLock.RLock()
	defer settingsLock.RUnlock()
	return ollamaBaseURL
}

// GetRuntimeOllamaModel returns the current runtime Ollama model
func GetRuntimeOllamaModel() string {
	settingsLock.RLock()
	defer settingsLock.RUnlock()
	return ollamaModel
}

// GetOllamaSettings returns the current Ollama configuration
// GET /api/settings/ollama
func GetOllamaSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ollama_base_url": GetRuntimeOllamaBaseURL(),
		"ollama_model":    GetRuntimeOllamaModel(),
	})
}

// UpdateOllamaSettings swaps the Ollama server or model at runtime
// PUT /api/settings/ollama
func UpdateOllamaSettings(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url" binding:"required"`
		OllamaModel   string `json:"ollama_model"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settingsLock.Lock()
	ollamaBaseURL = req.OllamaBaseURL
	if req.OllamaModel != "" {
		ollamaModel = req.OllamaModel
	}
	settingsLock.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"message":         "Ollama settings updated successfully",
		"ollama_base_url": GetRuntimeOllamaBaseURL(),
		"ollama_model":    GetRuntimeOllamaModel(),
	})
}

// TestOllamaConnection checks whether an Ollama server is reachable,
// defaulting to the currently configured one
// POST /api/settings/ollama/test
func TestOllamaConnection(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.OllamaBaseURL == "" {
		req.OllamaBaseURL = GetRuntimeOllamaBaseURL()
	}

	svc := ai.NewOllamaService(req.OllamaBaseURL, GetRuntimeOllamaModel())
	if err := svc.TestConnection(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":       true,
		"ollama_base_url": req.OllamaBaseURL,
	})
}
