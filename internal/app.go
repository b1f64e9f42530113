package internal

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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"content-manager-api/config"
	"content-manager-api/internal/application/attachments"
	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/application/services"
	"content-manager-api/internal/infrastructure/cache"
	"content-manager-api/internal/infrastructure/db/postgres"
	announcementDB "content-manager-api/internal/infrastructure/db/postgres/announcement"
	blogDB "content-manager-api/internal/infrastructure/db/postgres/blog"
	contactDB "content-manager-api/internal/infrastructure/db/postgres/contact"
	donationDB "content-manager-api/internal/infrastructure/db/postgres/donation"
	eventDB "content-manager-api/internal/infrastructure/db/postgres/event"
	opportunityDB "content-manager-api/internal/infrastructure/db/postgres/opportunity"
	publicationDB "content-manager-api/internal/infrastructure/db/postgres/publication"
	teammemberDB "content-manager-api/internal/infrastructure/db/postgres/teammember"
	userDB "content-manager-api/internal/infrastructure/db/postgres/user"
	"content-manager-api/internal/infrastructure/jwt"
	"content-manager-api/internal/infrastructure/mail"
	"content-manager-api/internal/infrastructure/metrics"
	"content-manager-api/internal/infrastructure/mq"
	"content-manager-api/internal/infrastructure/payment"
	"content-manager-api/internal/infrastructure/storage/cloudinary"
	"content-manager-api/internal/infrastructure/storage/localdisk"
	"content-manager-api/internal/interface/api/rest"
	"content-manager-api/internal/interface/api/rest/middleware"
	"content-manager-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	store      ports.MediaStore
	cache      ports.ListCache
	mailer     ports.Mailer
	payment    ports.PaymentInitiator
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// media store
	var store ports.MediaStore
	switch cfg.Storage.Backend {
	case "cloudinary":
		store = cloudinary.New(logger, cfg.Storage)
	default:
		local, err := localdisk.New(logger, cfg.Storage, cfg.App.BaseURL)
		if err != nil {
			logger.Fatal("failed to init local storage", zap.Error(err))
		}
		r.Static("/uploads", local.Dir())
		store = local
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
	}
	if err = rbMQ.Init(); err != nil {
		logger.Fatal("failed init rabbitMQ", zap.Error(err))
	}
	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	if err = rmqConsumer.Init(); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	// list cache
	var listCache ports.ListCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, logger, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		listCache = redisCache
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		store:      store,
		cache:      listCache,
		mailer:     mail.New(logger, cfg.Mail),
		payment:    payment.New(logger, cfg.Pay),
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	announcementRepo := announcementDB.NewRepository(a.db)
	blogRepo := blogDB.NewRepository(a.db)
	publicationRepo := publicationDB.NewRepository(a.db)
	teamMemberRepo := teammemberDB.NewRepository(a.db)
	opportunityRepo := opportunityDB.NewRepository(a.db)
	eventRepo := eventDB.NewRepository(a.db)
	contactRepo := contactDB.NewRepository(a.db)
	donationRepo := donationDB.NewRepository(a.db)
	userRepo := userDB.NewRepository(a.db)

	// attachment lifecycle
	attManager := attachments.NewManager(a.store, a.logger, a.cfg.Storage.MaxFileSize, a.cfg.Storage.MaxFilesPerRq)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtService, a.mailer, a.logger, a.cfg.App.JWTTTL, a.cfg.App.BaseURL)
	announcementService := services.NewAnnouncementService(announcementRepo, attManager, a.mq, a.mCounter, a.cache)
	blogService := services.NewBlogService(blogRepo, attManager, a.mq, a.mCounter, a.cache)
	publicationService := services.NewPublicationService(publicationRepo, attManager, a.mq, a.mCounter, a.cache)
	teamMemberService := services.NewTeamMemberService(teamMemberRepo, attManager, a.mq, a.mCounter, a.cache)
	opportunityService := services.NewOpportunityService(opportunityRepo, attManager, a.mq, a.mCounter, a.cache)
	eventService := services.NewEventService(eventRepo, attManager, a.mq, a.mCounter, a.cache)
	contactService := services.NewContactService(contactRepo, a.mailer, a.logger, a.cfg.Mail.ContactTo, a.mq, a.mCounter, a.cache)
	donationService := services.NewDonationService(donationRepo, a.payment, a.logger, a.cfg.Pay.CallbackURL, a.mq, a.mCounter, a.cache)

	// controllers
	rest.NewAuthController(a.router, a.logger, authService)
	rest.NewAnnouncementController(a.router, announcementService, a.logger, jwtService, a.cache)
	rest.NewBlogController(a.router, blogService, a.logger, jwtService, a.cache)
	rest.NewPublicationController(a.router, publicationService, a.logger, jwtService, a.cache)
	rest.NewTeamMemberController(a.router, teamMemberService, a.logger, jwtService, a.cache)
	rest.NewOpportunityController(a.router, opportunityService, a.logger, jwtService, a.cache)
	rest.NewEventController(a.router, eventService, a.logger, jwtService, a.cache)
	rest.NewContactController(a.router, contactService, a.logger, jwtService)
	rest.NewDonationController(a.router, donationService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
