package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutrimind/nutrimind/internal/utils"
	"github.com/nutrimind/nutrimind/pkg/session"
)

const shutdownTimeout = 5 * time.Second

// Config holds the listener options that come from viper.
type Config struct {
	Username    string
	Password    string
	CORSOrigins []string
}

// Server exposes one session over a local JSON API. The session is not safe
// for concurrent use, so every handler holds mu.
type Server struct {
	mu     sync.Mutex
	sess   *session.Session
	router *gin.Engine
	cfg    Config
}

func New(sess *session.Session, cfg Config) *Server {
	s := &Server{sess: sess, cfg: cfg}
	s.router = s.setupRouter()
	return s
}

// Handler returns the gin engine, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	if c, ok := corsConfig(s.cfg.CORSOrigins); ok {
		router.Use(cors.New(c))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	if s.cfg.Username != "" {
		api.Use(gin.BasicAuth(gin.Accounts{s.cfg.Username: s.cfg.Password}))
	}
	api.Use(s.lock)
	{
		api.GET("/snapshot", s.handleSnapshot)
		api.GET("/meals", s.handleMeals)
		api.POST("/inputs", s.handleInputs)
		api.POST("/water", s.handleWater)
		api.POST("/exercise", s.handleExercise)

		api.GET("/foods", s.handleListFoods)
		api.POST("/foods", s.handleAddFood)
		api.POST("/foods/repeat", s.handleRepeatFood)
		api.GET("/foods/recent", s.handleRecent)

		api.GET("/deck", s.handleDeck)
		api.GET("/deck/favorites", s.handleFavorites)
		api.POST("/deck/:action", s.handleDeckAction)

		api.GET("/recommendations", s.handleRecommendations)
		api.POST("/recommendations/add", s.handleAddRecommendation)

		api.POST("/photo", s.handleScanPhoto)
		api.POST("/photo/confirm", s.handleConfirmPhoto)
		api.DELETE("/photo", s.handleCancelPhoto)
		api.POST("/barcode", s.handleBarcode)

		api.GET("/report", s.handleReport)
		api.GET("/weight", s.handleWeight)
	}
	return router
}

func (s *Server) lock(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Next()
}

// corsConfig builds the CORS policy. No origins means no CORS middleware;
// a single "*" allows any origin without credentials.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       24 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	return c, true
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.Log.Debugf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errc := make(chan error, 1)
	go func() {
		utils.Log.Infof("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
