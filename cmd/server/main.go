package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/timetable-wizard/internal/config"
	"github.com/rhyrak/timetable-wizard/internal/pkg/logger"
	"github.com/rhyrak/timetable-wizard/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Configure(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("failed to create database directory")
		}
	}
	st, err := store.Open(context.Background(), cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("failed to open database")
	}
	defer st.Close()

	gin.SetMode(cfg.Server.Mode)
	r := newRouter(&server{store: st, cfg: cfg, log: log})

	log.Info().Str("port", cfg.Server.Port).Str("db", cfg.Database.Path).Msg("listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newRouter(s *server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(s.log), cors())

	r.POST("/catalog", s.handlePostCatalog)
	r.GET("/catalog/:id/search", s.handleSearch)
	r.GET("/catalog/:id/recommendations", s.handleRecommendations)

	r.GET("/schedule", s.handleGetSchedule)
	r.GET("/schedule/:id", s.handleGetScheduleWithId)
	r.DELETE("/schedule/:id", s.handleDeleteScheduleWithId)
	r.POST("/schedule", s.handlePostSchedule)
	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
