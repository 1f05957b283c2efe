// In file: cmd/gateway/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/toolbridge/gateway/internal/auth"
	"github.com/toolbridge/gateway/internal/cache"
	"github.com/toolbridge/gateway/internal/invoke"
	"github.com/toolbridge/gateway/internal/llm"
	"github.com/toolbridge/gateway/internal/tools"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// main is the composition root: it loads configuration, initializes all
// services, injects dependencies, and starts the server. Nothing below this
// file holds ambient global state.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Tool Orchestration Gateway | %s", buildInfo)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	modelClient, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("❌ FATAL: Could not create model client: %v", err)
	}
	defer modelClient.Close()
	log.Printf("✅ Model client initialized (model: %s).", cfg.GeminiModel)

	catalog, err := initializeCatalog(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	issuer := auth.NewIssuer(cfg.JWTSecret)
	invoker := invoke.NewInvoker(cfg.ToolServiceURL)

	var respCache *cache.ResponseCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("❌ FATAL: Could not connect to Redis: %v", err)
		}
		respCache = cache.NewResponseCache(rdb)
		log.Println("✅ Response cache enabled.")
	} else {
		log.Println("ℹ️ REDIS_ADDR not set; response cache disabled.")
	}

	gatewayHandler := NewGatewayHandler(modelClient, issuer, invoker, catalog, respCache, cfg)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	engine.GET("/", gatewayHandler.HandleIndex)
	engine.Static("/static", "./static")
	engine.POST("/api/process", gatewayHandler.HandleProcess)

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeCatalog assembles the tool catalog: built-in declarations plus
// any extras from the optional YAML catalog file.
func initializeCatalog(cfg *AppConfig) (*tools.Catalog, error) {
	catalog := tools.DefaultCatalog()
	if cfg.ToolsConfigPath != "" {
		if err := tools.LoadCatalogFile(catalog, cfg.ToolsConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load tool catalog: %w", err)
		}
	}
	log.Printf("✅ Tool catalog initialized with %d declarations.", catalog.Count())
	return catalog, nil
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Gateway is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
