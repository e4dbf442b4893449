package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"curriculo-api/internal/core/auth"
	"curriculo-api/internal/core/cache"
	"curriculo-api/internal/core/config"
	"curriculo-api/internal/core/database"
	"curriculo-api/internal/core/logger"
	"curriculo-api/internal/core/server"
	"curriculo-api/internal/repo"
	"curriculo-api/internal/service"
	"curriculo-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.FromConfig(cfg.Log, cfg.App)
	defer cleanup()
	undo := logger.RedirectStdLog(log, zapcore.InfoLevel)
	defer undo()

	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log, zapcore.ErrorLevel)

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	defer func() { _ = database.Close(db) }()
	log.Info("database connected",
		zap.String("driver", cfg.DB.Driver),
		zap.String("dsn", database.MaskDSN(cfg.DB.Driver, cfg.DB.DSN)),
	)

	// 自动迁移
	if cfg.DB.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 读缓存（可选）
	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		defer func() { _ = c.Close() }()
		if err := c.Ping(context.Background()); err != nil {
			// 缓存不可用时照常服务，读请求直接回源
			log.Warn("redis unreachable, serving without cache", zap.Error(err))
		} else {
			log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 写保护（可选）
	var jwter *auth.JWTer
	if cfg.JWT.ProtectWrites {
		jwter = &auth.JWTer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, TTL: cfg.JWT.TTL()}
		log.Info("write endpoints require a bearer token")
	}

	svcs := service.NewSet(db, service.Options{Cache: c, TTL: cfg.Redis.TTL(), Log: log})
	r := router.NewAPIEngine(log, router.Deps{
		DB:       db,
		Services: svcs,
		JWT:      jwter,
		Limits: router.Limits{
			RPS:           cfg.Limits.RPS,
			Burst:         cfg.Limits.Burst,
			PerIPRPS:      cfg.Limits.PerIPRPS,
			PerIPBurst:    cfg.Limits.PerIPBurst,
			MaxConcurrent: cfg.Limits.MaxConcurrent,
			MaxBodyBytes:  cfg.Limits.MaxBodyBytes,
			Timeout:       cfg.Limits.Timeout(),
		},
	})

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(addr, r,
		cfg.App.HTTP.ReadTimeout(), cfg.App.HTTP.WriteTimeout(), cfg.App.HTTP.IdleTimeout())
	if el, err := logger.ToStdLogger(log, zapcore.ErrorLevel); err == nil {
		srv.ErrorLog = el
	}

	// 启动日志
	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("curriculo api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("pessoas", baseURL+"/pessoas"),
	)

	// 优雅关闭
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, srv, log, cfg.App.HTTP.ShutdownGrace()); err != nil {
		log.Fatal("curriculo api FAILED", zap.Error(err))
	}
	log.Info("curriculo api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	gormLog, err := logger.ToStdLogger(l.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		l.Fatal("gorm logger", zap.Error(err))
	}
	db, err := database.NewGorm(database.FromConfig(cfg.DB, gormLog))
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
