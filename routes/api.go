package routes

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/festwish/wish-service/environments"
	"github.com/festwish/wish-service/handlers"
	"github.com/festwish/wish-service/internal/middlewares"
)

// RegisterRoutes registers all API routes with middleware
func RegisterRoutes(
	e *echo.Echo,
	healthHandler *handlers.HealthHandler,
	festivalHandler *handlers.FestivalHandler,
	relationshipHandler *handlers.RelationshipHandler,
	wishHandler *handlers.WishHandler,
	imageHandler *handlers.ImageHandler,
	cfg *environments.Config,
) {
	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 base group
	v1 := e.Group("/api/v1")

	// Reference data is public
	festivals := v1.Group("/festivals")
	festivals.GET("", festivalHandler.GetFestivals)
	festivals.GET("/:id", festivalHandler.GetFestival)
	festivals.GET("/:id/detail", festivalHandler.GetFestivalDetail)

	relationships := v1.Group("/relationships")
	relationships.GET("", relationshipHandler.GetRelationships)
	relationships.GET("/:id", relationshipHandler.GetRelationship)

	v1.GET("/channels", wishHandler.ListChannels)

	// Wish lifecycle
	wishes := v1.Group("/wishes")
	wishes.POST("", wishHandler.CreateWish)
	wishes.GET("/preview", wishHandler.PreviewWish)
	wishes.GET("/history/:userId", wishHandler.GetUserWishes)
	wishes.GET("/:id", wishHandler.GetWish)
	wishes.POST("/:id/card", wishHandler.GenerateCard)
	wishes.GET("/:id/download", wishHandler.DownloadCard)
	wishes.POST("/:id/send", wishHandler.SendWish)

	// User image management with its own API key
	images := v1.Group("/users/:userId/images", middlewares.APIKeyAuth(cfg.Auth.ImagesAPIKey))
	images.POST("", imageHandler.UploadImage)
	images.GET("", imageHandler.GetUserImages)
	images.DELETE("/:imageId", imageHandler.DeleteImage)
}
