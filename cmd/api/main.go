package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edsonbastos2/salon-agenda/internal/audit"
	"github.com/edsonbastos2/salon-agenda/internal/config"
	dbpkg "github.com/edsonbastos2/salon-agenda/internal/db"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/jobs"
	"github.com/edsonbastos2/salon-agenda/internal/logger"
	"github.com/edsonbastos2/salon-agenda/internal/metrics"
	"github.com/edsonbastos2/salon-agenda/internal/notify"
	"github.com/edsonbastos2/salon-agenda/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db := dbpkg.NewDB(cfg, log)

	// ======================================================
	// 🔔 EVENTOS (auditoria + notificações + métricas)
	// ======================================================

	var (
		publisher    notify.Publisher
		ledger       notify.Ledger
		memoryLedger *notify.MemoryLedger
	)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		publisher = notify.NewRedisPublisher(rdb)
		ledger = notify.NewRedisLedger(rdb, 30*24*time.Hour)

		log.Info().Str("addr", cfg.RedisAddr).Msg("redis connected")
	} else {
		memoryLedger = notify.NewMemoryLedger()
		ledger = memoryLedger

		log.Warn().Msg("REDIS_ADDR not set, using in-memory dedup ledger")
	}

	notifier := notify.NewNotifier(notify.NewGormStore(db), publisher, ledger, log)

	dispatcher := events.NewDispatcher(
		log,
		audit.New(db),
		notifier,
		metrics.NewSubscriber(),
	)
	defer dispatcher.Close()

	// ======================================================
	// ⏰ JOBS (lembretes diários + varredura do ledger)
	// ======================================================

	scheduler := jobs.NewScheduler(db, dispatcher, memoryLedger, log)
	scheduler.Start()
	defer scheduler.Stop()

	// ======================================================
	// 🌐 HTTP
	// ======================================================

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg, dispatcher)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
