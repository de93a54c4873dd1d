package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"craftdeck/internal/catalog"
	"craftdeck/internal/editor"
	"craftdeck/internal/storage"
)

// RegisterRoutes wires all v1 routes onto the engine.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	store *editor.Store,
	provider *catalog.Provider,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	storageClient *storage.Client,
	generator Generator,
	logger *slog.Logger,
	presignTTL time.Duration,
	allowedOrigins []string,
) {
	catalogHandler := NewCatalogHandler(provider)
	sessionHandler := NewSessionHandler(store, provider)
	documentHandler := NewDocumentHandler(store)
	aiHandler := NewAIHandler(store, generator)
	exportHandler := NewExportHandler(store, db, asynqClient, storageClient, redisClient, logger, presignTTL)
	wsHandler := NewWsHandler(redisClient, store, logger, allowedOrigins)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		templates := v1.Group("/templates")
		{
			templates.GET("", catalogHandler.ListTemplates)
			templates.GET("/:id", catalogHandler.GetTemplate)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.OpenSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.DELETE("/:id", sessionHandler.CloseSession)

			sessions.POST("/:id/overlays", sessionHandler.AddOverlay)
			sessions.PATCH("/:id/overlays/:overlayID", sessionHandler.UpdateOverlay)
			sessions.DELETE("/:id/overlays/:overlayID", sessionHandler.RemoveOverlay)
			sessions.PUT("/:id/selection", sessionHandler.SetSelection)

			sessions.POST("/:id/drag/begin", sessionHandler.BeginDrag)
			sessions.POST("/:id/drag/move", sessionHandler.MoveDrag)
			sessions.POST("/:id/drag/end", sessionHandler.EndDrag)

			sessions.PUT("/:id/filters", sessionHandler.SetFilters)
			sessions.POST("/:id/filters/reset", sessionHandler.ResetFilters)

			sessions.PATCH("/:id/document", documentHandler.SetField)
			sessions.POST("/:id/document/experience", documentHandler.AddExperience)
			sessions.PATCH("/:id/document/experience/:entryID", documentHandler.UpdateExperience)
			sessions.DELETE("/:id/document/experience/:entryID", documentHandler.RemoveExperience)
			sessions.POST("/:id/document/education", documentHandler.AddEducation)
			sessions.PATCH("/:id/document/education/:entryID", documentHandler.UpdateEducation)
			sessions.DELETE("/:id/document/education/:entryID", documentHandler.RemoveEducation)
			sessions.GET("/:id/document/print", documentHandler.PrintDocument)

			sessions.POST("/:id/ai", aiHandler.Generate)
			sessions.POST("/:id/export", exportHandler.TriggerExport)
		}

		v1.GET("/exports/:exportID/download", exportHandler.Download)
	}
}
