package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"tgimg"
	"tgimg/config"
	"tgimg/internal/application/usecase"
	"tgimg/internal/domain/repository/audit"
	"tgimg/internal/domain/repository/filestore"
	"tgimg/internal/domain/repository/kvstore"
	"tgimg/internal/infrastructure/broker"
	"tgimg/internal/infrastructure/cloudinary"
	"tgimg/internal/infrastructure/database"
	redisKV "tgimg/internal/infrastructure/kvstore"
	"tgimg/internal/infrastructure/minio"
	"tgimg/internal/infrastructure/telegram"
	"tgimg/internal/infrastructure/wallhaven"
	"tgimg/internal/presentation/handler"
	"tgimg/internal/presentation/middleware"
)

type kvBackend struct {
	settings  kvstore.SettingsStore
	writer    kvstore.RecordWriter
	retriever kvstore.RecordRetriever
	closer    func() error
}

type fileBackend interface {
	filestore.Storer
	filestore.Fetcher
}

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running tgimg", "version", tgimg.StringVersion())

	httpClient := &http.Client{}
	tgClient := telegram.New(cfg.Telegram, httpClient)

	kv, err := openKV(cfg)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := kv.closer(); err != nil {
			logger.Error("failed to close kv store", "err", err)
		}
	}()

	files, err := openFileStore(cfg, tgClient)
	if err != nil {
		ExitOnError(err)
	}

	reporter, closeReporter, err := openAudit(cfg, tgClient)
	if err != nil {
		ExitOnError(err)
	}
	defer closeReporter()

	compressor := cloudinary.NewCompressor(cfg.Cloudinary, httpClient)
	searcher := wallhaven.NewSearcher(cfg.Wallhaven, httpClient)

	uploader := usecase.NewUploader(kv.settings, kv.writer, compressor, reporter, files, cfg.Upload)
	settingsManager := usecase.NewSettingsManager(kv.settings)
	wallpaperFinder := usecase.NewWallpaperFinder(searcher)
	fileGetter := usecase.NewFileGetter(kv.settings, kv.retriever, files)

	uploadHandler := handler.NewUploadHandler(uploader)
	fileHandler := handler.NewFileHandler(fileGetter)
	settingsHandler := handler.NewSettingsHandler(settingsManager)
	wallpaperHandler := handler.NewWallpaperHandler(wallpaperFinder)

	origins := cfg.HTTPServer.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HandleHTTPError
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTPServer.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTPServer.RateLimit))))

	adminPrefix := cfg.HTTPServer.AdminPrefix
	detectAdmin := middleware.DetectAdmin(adminPrefix)
	requireAdmin := middleware.RequireAdmin(adminPrefix)

	e.GET("/health", handler.HandleHealth)
	e.POST("/upload", uploadHandler.Handle, detectAdmin)
	e.GET("/file/:name", fileHandler.Handle, detectAdmin)
	e.GET("/api/settings", settingsHandler.HandleGet)
	e.GET("/api/wallhaven/wallpaper", wallpaperHandler.Handle)

	manage := e.Group("/api/manage", requireAdmin)
	manage.GET("/settings", settingsHandler.HandleGet)
	manage.POST("/settings", settingsHandler.HandlePut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}

func openKV(cfg *config.Config) (*kvBackend, error) {
	switch cfg.Backends.KV {
	case config.KVMongo:
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			return nil, err
		}

		return &kvBackend{
			settings:  database.NewSettingsStore(db),
			writer:    database.NewRecordWriter(db),
			retriever: database.NewRecordRetriever(db),
			closer:    db.Stop,
		}, nil

	default:
		client, err := redisKV.NewClient(cfg.KVStore)
		if err != nil {
			return nil, err
		}

		return &kvBackend{
			settings:  redisKV.NewSettingsStore(client),
			writer:    redisKV.NewRecordWriter(client),
			retriever: redisKV.NewRecordRetriever(client),
			closer:    client.Close,
		}, nil
	}
}

func openFileStore(cfg *config.Config, tgClient *telegram.Client) (fileBackend, error) {
	switch cfg.Backends.Store {
	case config.StoreMinIO:
		client, err := minio.New(cfg.MinIOClient)
		if err != nil {
			return nil, err
		}

		return minio.NewStorer(client.MinioClient, cfg.MinIOStorer), nil

	default:
		return struct {
			*telegram.Storer
			*telegram.Fetcher
		}{telegram.NewStorer(tgClient), telegram.NewFetcher(tgClient)}, nil
	}
}

// openAudit returns a nil reporter when reports are disabled.
func openAudit(cfg *config.Config, tgClient *telegram.Client) (audit.Reporter, func(), error) {
	switch cfg.Backends.Audit {
	case config.AuditTelegram:
		return telegram.NewNotifier(tgClient), func() {}, nil

	case config.AuditBroker:
		client, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			return nil, nil, err
		}

		return broker.NewPublisher(client, cfg.PublisherConfig), func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close broker client", "err", err)
			}
		}, nil

	default:
		return nil, func() {}, nil
	}
}
