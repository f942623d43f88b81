package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kantanpro/kantanpro/internal/config"
	"github.com/kantanpro/kantanpro/internal/server/middlewares"
)

const apiPrefix = "/api/v1"

type Server struct {
	srv    *http.Server
	engine *gin.Engine
	log    *zap.SugaredLogger
}

// NewServer builds the router. registerHandlerFn receives the /api/v1 group.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg.Server.ServerMode == config.ServerModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middlewares.RequestID(), middlewares.Logger(), middlewares.Recovery())

	registerHandlerFn(engine.Group(apiPrefix))

	if cfg.Server.ServerMode == config.ServerModeProd && cfg.Server.StaticsFolder != "" {
		if err := serveStatics(engine, cfg.Server.StaticsFolder); err != nil {
			return nil, err
		}
	} else {
		engine.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	}

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Server.ListenAddress(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		log:    zap.S().Named("server"),
	}, nil
}

// serveStatics mounts the UI build. Unknown non-API paths get index.html so
// client-side routes survive a reload.
func serveStatics(engine *gin.Engine, folder string) error {
	index := filepath.Join(folder, "index.html")
	if _, err := os.Stat(index); err != nil {
		return fmt.Errorf("statics folder %q has no index.html: %w", folder, err)
	}

	engine.Static("/static", filepath.Join(folder, "static"))
	engine.StaticFile("/favicon.ico", filepath.Join(folder, "favicon.ico"))
	engine.StaticFile("/", index)
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
	return nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server fails or Stop is called. After Stop it
// returns http.ErrServerClosed.
func (s *Server) Start(ctx context.Context) error {
	s.log.Infow("starting http server", "address", s.srv.Addr)
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	return s.srv.ListenAndServe()
}

// Stop waits for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("stopping http server")
	return s.srv.Shutdown(ctx)
}
