package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ovenside/storefront/internal/server/http/handlers"
	"github.com/ovenside/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	eventHandler := handlers.NewEventHandler(facade)
	windowHandler := handlers.NewWindowHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	storefrontHandler := handlers.NewStorefrontHandler(facade)

	api := engine.Group("/api")

	merchant := api.Group("/merchant")
	merchant.POST("/register", authHandler.Register)
	merchant.POST("/login", authHandler.Login)

	storefront := api.Group("/storefront")
	storefront.GET("/events", storefrontHandler.List)
	storefront.GET("/events/:id", storefrontHandler.Get)
	storefront.GET("/windows/:id/slots", storefrontHandler.Slots)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/events", eventHandler.Create)
	authed.GET("/events", eventHandler.List)
	authed.GET("/events/:id", eventHandler.Get)
	authed.PUT("/events/:id", eventHandler.Update)
	authed.POST("/events/:id/publish", eventHandler.Publish)
	authed.GET("/events/:id/readiness", eventHandler.Readiness)
	authed.GET("/events/:id/close", eventHandler.Close)
	authed.POST("/events/:id/windows", windowHandler.Add)
	authed.GET("/events/:id/windows", windowHandler.List)
	authed.PUT("/windows/:id", windowHandler.Update)
	authed.DELETE("/windows/:id", windowHandler.Delete)
	authed.GET("/windows/:id/slots", windowHandler.Slots)
	authed.POST("/events/:id/menu", catalogHandler.AddMenuItem)
	authed.GET("/events/:id/menu", catalogHandler.ListMenu)
	authed.DELETE("/menu/:id", catalogHandler.DeleteMenuItem)
	authed.POST("/locations", catalogHandler.CreateLocation)
	authed.GET("/locations", catalogHandler.ListLocations)

	return engine
}
