// Command server exposes internal/engine over HTTP and websockets: POST
// /games creates a game from two deck lists, GET /games/:id/ws?player=0|1
// joins a seat and streams Response/Status traffic for it.
package main

import (
	"fmt"
	"os"

	"pockettcg/internal/config"
	"pockettcg/internal/logger"
	"pockettcg/internal/repository"
	"pockettcg/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if err := logger.Init(&cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	creatures, items, supporters, tools := repository.DefaultCatalogue()
	repo := repository.NewInMemory(creatures, items, supporters, tools)
	hub := server.NewHub(repo)
	handler := server.NewHandler(hub)

	r := gin.Default()
	r.GET("/health", handler.HealthCheck)
	r.POST("/games", handler.CreateGame)
	r.GET("/games/:id/ws", handler.ServeWS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
