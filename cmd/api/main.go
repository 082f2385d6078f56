package main

import (
	"BlogAdmin/internal/api/config"
	"BlogAdmin/internal/model"
	"BlogAdmin/internal/pkg/database"
	"BlogAdmin/internal/pkg/kafka"
	"BlogAdmin/internal/pkg/logger"
	"BlogAdmin/internal/pkg/redis"
	"BlogAdmin/internal/repository"
	"BlogAdmin/internal/service"
	"BlogAdmin/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Logger)

	// 数据库连接, 未配置 DSN 时使用内存仓库
	var postRepo repository.PostRepo
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	switch {
	case errors.Is(err, database.ErrEmptyDSN):
		log.Warn("database.dsn is empty, using in-memory post repository")
		postRepo = repository.NewMemoryPostRepo(&model.Post{
			ID:       1,
			Title:    "Hello",
			Slug:     "hello",
			Markdown: "# Hi",
		})
	case err != nil:
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	default:
		postRepo = repository.NewPostRepository(db)
	}

	// Redis 文章缓存
	var postCache *redis.PostCache
	var cache service.PostCache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		defer func() { _ = rdb.Close() }()
		postCache = redis.NewPostCache(rdb, cfg.Redis.PostCacheTTL())
		cache = postCache
	}

	// Kafka 文章事件
	var publisher service.PostEventPublisher
	var consumerMgr *kafka.ConsumerManager
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := kafka.NewPostEventProducer(cfg.Kafka)
		if err != nil {
			log.Error("Fatal error: failed to create kafka producer", "err", err)
			panic(err)
		}
		defer func() { _ = producer.Close() }()
		publisher = producer

		if postCache != nil {
			consumerMgr, err = kafka.NewConsumerManager(cfg.Kafka, postCache)
			if err != nil {
				log.Error("Fatal error: failed to create kafka consumer", "err", err)
				panic(err)
			}
		}
	}

	// 依赖注入
	app, err := wire.BuildApplication(postRepo, cache, publisher, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Kafka 消费者
	if consumerMgr != nil {
		g.Go(func() error {
			log.Info("Kafka Consumers starting...")
			return consumerMgr.Start(ctx)
		})
	}

	// HTTP 服务器
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
