package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"craftdeck/internal/ai"
	"craftdeck/internal/editor"
	"craftdeck/internal/errcode"
)

// Generator produces assistant content for a category-scoped prompt.
// Implementations never fail; they return user-readable fallback text.
type Generator interface {
	Generate(ctx context.Context, category editor.Category, prompt string) string
}

// AIHandler drives the content collaborator. One generation per session
// at a time; a second trigger while one is pending gets a 409.
type AIHandler struct {
	store     *editor.Store
	generator Generator
}

func NewAIHandler(store *editor.Store, generator Generator) *AIHandler {
	return &AIHandler{store: store, generator: generator}
}

type generateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Generate runs the collaborator against the session's category.
func (h *AIHandler) Generate(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "session not found")
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		BadRequest(c, "prompt must not be empty")
		return
	}

	if err := session.BeginAI(); err != nil {
		if errors.Is(err, editor.ErrBusy) {
			Conflict(c, "a generation is already in progress")
			return
		}
		Internal(c, "failed to start generation")
		return
	}
	defer session.EndAI()

	content := h.generator.Generate(c.Request.Context(), session.Template.Category, prompt)
	if ai.IsFallback(content) {
		c.JSON(http.StatusOK, gin.H{"content": content, "error_code": errcode.AIGenerationFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}
