package web

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go-micro.dev/v4/logger"
)

const (
	defaultEagerTiles = 6
	defaultTitle      = "Gallery"
	readHeaderTimeout = 10 * time.Second
)

// Settings holds dependencies and options of the web server
type Settings struct {
	Builds  Builds
	Catalog Catalog
	Media   MediaStorage

	// Title is shown in the page header
	Title string

	// EagerTiles is a count of first tiles loaded with high fetch priority
	EagerTiles int
}

// Server renders the gallery and serves media files
type Server struct {
	s      Settings
	engine *gin.Engine
	srv    *http.Server
}

func NewServer(settings Settings) *Server {
	if settings.EagerTiles <= 0 {
		settings.EagerTiles = defaultEagerTiles
	}
	if settings.Title == "" {
		settings.Title = defaultTitle
	}

	s := &Server{s: settings, engine: gin.New()}
	s.engine.Use(gin.Recovery())
	s.engine.SetHTMLTemplate(template.Must(template.New("").Funcs(template.FuncMap{
		"mediaURL": mediaURL,
	}).Parse(templates)))
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.galleryPage)
	s.engine.GET("/view/:build/:index", s.viewPage)
	s.engine.GET("/media/*file", s.serveMedia)
	s.engine.GET("/health", s.health)

	api := s.engine.Group("/api")
	api.GET("/media", s.getMedia)
	api.GET("/catalog", s.getCatalog)
	api.PUT("/catalog", s.putCatalog)
}

// Handler returns http handler of all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe starts serving in background
func (s *Server) ListenAndServe(addr string) {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Infof("Web server listening on %s", addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Web server failed: %s", err)
		}
	}()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
