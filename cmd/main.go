package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/bsaveapp/bsave/internal/delivery"
	ws "github.com/bsaveapp/bsave/internal/delivery/ws"
	"github.com/bsaveapp/bsave/internal/domain"
	"github.com/bsaveapp/bsave/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {

	// ENV
	_ = godotenv.Load()

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// POSTGRES
	ctx := context.Background()

	pool, err := infra.NewPgxPool(ctx)
	if err != nil {
		panic("cannot connect pgxpool: " + err.Error())
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		panic("postgres ping failed: " + err.Error())
	}

	// SERVICES
	extractor := infra.NewExtractorClient(os.Getenv("EXTRACTOR_BASE_URL"), nil)
	downloadRepo := infra.NewPostgresDownloadRepo(pool)

	// WS HUB
	hub := ws.NewHub()
	sessions := domain.NewSessionManager(extractor, ws.NewEventNotifier(hub), domain.SessionConfig{})

	// HANDLERS
	hVideo := delivery.NewVideoHandler(sessions, downloadRepo, zl)
	hHistory := delivery.NewHistoryHandler(downloadRepo, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hVideo, hHistory)

	r.Get("/ws", ws.Handler(hub, sessions.Drop))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": port},
	})

	if err := http.ListenAndServe(":"+port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
