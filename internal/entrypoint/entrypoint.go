package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plakhov/taskboard/internal/auth"
	"github.com/plakhov/taskboard/internal/config"
	"github.com/plakhov/taskboard/internal/database"
	"github.com/plakhov/taskboard/internal/database/boards"
	"github.com/plakhov/taskboard/internal/database/todos"
	"github.com/plakhov/taskboard/internal/database/users"
	http_controllers "github.com/plakhov/taskboard/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown: wait for SIGINT/SIGTERM, then drain with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Taskboard v%s", version)

	// The signing secret is the one piece of config the server cannot run
	// without.
	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("AUTH_JWT_SECRET is not set")
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	todoRepo := todos.NewRepository(db.DB)
	boardRepo := boards.NewRepository(db.DB)

	issuer := auth.NewTokenIssuer(cfg.Auth)

	// The OAuth verifier fetches Google's signing keys at startup and
	// refreshes them in the background until shutdown.
	verifierCtx, verifierCancel := context.WithCancel(context.Background())
	defer verifierCancel()

	var verifier auth.IdentityVerifier
	if cfg.OAuth.GoogleClientID != "" {
		googleVerifier, err := auth.NewGoogleVerifier(verifierCtx, cfg.OAuth.GoogleClientID)
		if err != nil {
			log.Fatalf("Failed to initialize Google OAuth verifier: %v", err)
		}
		verifier = googleVerifier
		log.Printf("OAuth login enabled for client %s", cfg.OAuth.GoogleClientID)
	} else {
		log.Printf("GOOGLE_OAUTH_CLIENT_ID is not set; OAuth login is disabled")
	}

	authService := auth.NewService(userRepo, issuer, verifier, cfg.Auth)
	authMiddleware := auth.NewMiddleware(issuer)

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		TodoStore:      todoRepo,
		BoardStore:     boardRepo,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		verifierCancel()
	}

	Serve(router, cfg, onShutdown)
}
