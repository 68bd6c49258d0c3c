// Package http exposes the public REST API: registration, login, identity,
// and per-user todo CRUD. Protected routes sit behind the bearer-token
// middleware; handlers receive an already verified identity.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skorolev/taskkeeper/internal/logging"
	"github.com/skorolev/taskkeeper/internal/server/config"
	"github.com/skorolev/taskkeeper/internal/server/models"
)

// UserService is the slice of the identity service the handlers need.
type UserService interface {
	Register(ctx context.Context, email, password, fullName, imageURL string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TodoService is the slice of the todo service the handlers need.
type TodoService interface {
	List(ctx context.Context, userID int64) ([]*models.Todo, error)
	Create(ctx context.Context, userID int64, title, description string, isCompleted bool) (*models.Todo, error)
	Update(ctx context.Context, id, userID int64, title, description string, isCompleted bool) error
	Delete(ctx context.Context, id, userID int64) error
}

type HTTPServer struct {
	address        string
	logger         logging.Logger
	users          UserService
	todos          TodoService
	jwtSecret      []byte
	jwtAlg         string
	allowedOrigins []string
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService, ts TodoService) *HTTPServer {
	return &HTTPServer{
		address:        cfg.EndpointAddr,
		logger:         l.With("module", "http_server"),
		users:          us,
		todos:          ts,
		jwtSecret:      []byte(cfg.SecretKey),
		jwtAlg:         cfg.JWTAlgorithm,
		allowedOrigins: strings.Split(cfg.CORSAllowedOrigins, ","),
	}
}

// Router builds the gin engine with middleware and all routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestIDMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.allowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.health)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", s.register)
			authRoutes.POST("/login", s.login)
			authRoutes.GET("/me", s.requireAuth(), s.me)
		}

		todoRoutes := api.Group("/todos", s.requireAuth())
		{
			todoRoutes.GET("", s.listTodos)
			todoRoutes.POST("", s.createTodo)
			todoRoutes.PUT("/:id", s.updateTodo)
			todoRoutes.DELETE("/:id", s.deleteTodo)
		}
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
