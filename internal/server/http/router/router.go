package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/handlers"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CommerceFacade, pinger handlers.Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	// Server-sent event endpoints must not be buffered by the gzip writer.
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{`.*/stream$`})))

	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(pinger)

	engine.GET("/ping", healthHandler.Ping)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.POST("/recover", authHandler.Recover)
	user.POST("/reset", authHandler.Reset)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/profile", profileHandler.Get)
	userAuth.PUT("/profile", profileHandler.Update)

	userAuth.POST("/orders", orderHandler.Place)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/stream", orderHandler.Stream)
	userAuth.GET("/orders/count", orderHandler.Count)
	userAuth.GET("/orders/:number", orderHandler.Get)
	userAuth.GET("/orders/:number/items", orderHandler.Items)
	userAuth.GET("/orders/:number/items/stream", orderHandler.StreamItems)
	userAuth.PATCH("/orders/:number/status", orderHandler.UpdateStatus)
	userAuth.PATCH("/orders/:number/dispatch", orderHandler.AssignDispatch)
	userAuth.DELETE("/orders/:number", orderHandler.Delete)

	return engine
}
