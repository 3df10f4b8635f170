package delivery

import (
	"errors"
	"net/http"

	"mindjournal-backend/internal/journal/dto"
	"mindjournal-backend/internal/journal/usecase"

	"github.com/gin-gonic/gin"
)

// PromptHandler handles writing prompt HTTP requests
type PromptHandler struct {
	promptUsecase usecase.PromptUsecase
}

// NewPromptHandler creates a new PromptHandler
func NewPromptHandler(promptUsecase usecase.PromptUsecase) *PromptHandler {
	return &PromptHandler{
		promptUsecase: promptUsecase,
	}
}

// CurrentPrompt returns the latest unused prompt, generating one lazily
// GET /api/ai/prompts/current
func (h *PromptHandler) CurrentPrompt(c *gin.Context) {
	prompt, err := h.promptUsecase.CurrentPrompt(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get prompt"})
		return
	}

	c.JSON(http.StatusOK, prompt)
}

// GeneratePrompt generates a fresh prompt from recent entries
// POST /api/ai/prompts/generate
func (h *PromptHandler) GeneratePrompt(c *gin.Context) {
	var req dto.GeneratePromptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Context == "" {
		req.Context = c.Query("context")
	}

	prompt, err := h.promptUsecase.GeneratePrompt(c.Request.Context(), userID(c), req.Context)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate prompt"})
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

// UsePrompt marks a prompt as used
// POST /api/ai/prompts/:id/use
func (h *PromptHandler) UsePrompt(c *gin.Context) {
	err := h.promptUsecase.UsePrompt(userID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prompt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to use prompt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prompt marked as used"})
}
