package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/emporiodaserra/storefront-backend/internal/cfg"
	v1Http "github.com/emporiodaserra/storefront-backend/internal/delivery/v1/http"
	"github.com/emporiodaserra/storefront-backend/internal/infrastructure/kafka"
	s3Repo "github.com/emporiodaserra/storefront-backend/internal/repository/minio"
	"github.com/emporiodaserra/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/emporiodaserra/storefront-backend/internal/repository/pgdb/converter"
	"github.com/emporiodaserra/storefront-backend/internal/repository/redis"
	redisConv "github.com/emporiodaserra/storefront-backend/internal/repository/redis/converter"
	"github.com/emporiodaserra/storefront-backend/internal/usecase"
	"github.com/emporiodaserra/storefront-backend/pkg/clients"
	"github.com/emporiodaserra/storefront-backend/pkg/closer"
	"github.com/emporiodaserra/storefront-backend/pkg/e"
	"github.com/emporiodaserra/storefront-backend/pkg/logger"
	"github.com/emporiodaserra/storefront-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	appCloser := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	appCloser.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catalogConv := pgdbConv.NewCatalogConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	productConv := redisConv.NewProductConverterImpl()

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, catalogConv)
	checkoutEventRepo := pgdb.NewCheckoutEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	assetRepo := s3Repo.NewAssetRepo(minioClient, cfg.Minio)

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	if err := assetRepo.EnsurePlaceholder(minioCtx); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize placeholder object")
		os.Exit(1)
	}
	minioCancel()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	redisCancel()
	appCloser.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	// origin identifica esta instância nas notificações de carrinho, para
	// que a ponte de pub/sub descarte o eco das próprias escritas.
	origin := uuid.NewString()

	cacheRepo := redis.NewCatalogCacheRepo(redisClient, productConv, cfg.Redis, logger)
	cartStorage := redis.NewCartStorage(redisClient, cfg.Redis, origin, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	appCloser.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}

	workerCtx, workerCancel := context.WithCancel(context.Background())
	outboxWorker := kafka.NewOutboxWorker(checkoutEventRepo, logger, producer, db.Dsn)
	outboxWorker.Start(workerCtx)
	appCloser.Add(func(ctx context.Context) error {
		workerCancel()
		outboxWorker.Stop()
		return nil
	})

	catalogUC := usecase.NewCatalogUC(catalogRepo, cacheRepo, assetRepo, logger, cfg.Catalog.PageSize)
	cartUC := usecase.NewCartUC(cartStorage, origin, logger)
	checkoutUC := usecase.NewCheckoutUC(cartUC, checkoutEventRepo, cfg.Checkout, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC, cartUC, checkoutUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Espera por sinal ou erro fatal ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := appCloser.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
