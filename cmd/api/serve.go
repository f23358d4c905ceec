package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/6ixminds/labs_backend/auth"
	config "github.com/6ixminds/labs_backend/configs"
	"github.com/6ixminds/labs_backend/database"
	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/events"
	"github.com/6ixminds/labs_backend/handlers"
	"github.com/6ixminds/labs_backend/jobs"
	"github.com/6ixminds/labs_backend/logs"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/notifications"
	"github.com/6ixminds/labs_backend/repository"
	"github.com/6ixminds/labs_backend/routes"
	"github.com/6ixminds/labs_backend/services"
	"github.com/6ixminds/labs_backend/storage"
	"github.com/6ixminds/labs_backend/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// bodyLimit fits two 5MB artifacts plus the form fields.
const bodyLimit = 12 << 20

func newServeCommand() *cobra.Command {
	var shutdownTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			slog.SetDefault(logs.New(cfg))

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			db, err := database.Connect(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, db, shutdownTimeout)
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 15*time.Second, "Maximum time to wait for graceful shutdown")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, db *gorm.DB, shutdownTimeout time.Duration) error {
	store, err := storage.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}

	producer := events.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
	defer producer.Close()

	mailer := notifications.NewEmailService(cfg)
	hub := websocket.NewHub()
	go hub.Run(ctx)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	dev := auth.NewDevProvider(cfg.DevTokensEnabled, cfg.DevTokenPrefix)
	if dev != nil {
		slog.Warn("development tokens enabled", "prefix", cfg.DevTokenPrefix)
	}

	messageRepo := repository.NewMessageRepository(db)
	messageSvc := services.NewMessageService(messageRepo, hub, mailer, producer, cfg.AdminNotifyEmail)

	scheduler := cron.New()
	digest := jobs.NewUnreadMessagesDigest(messageSvc, mailer, cfg.AdminNotifyEmail, cfg.PublicSiteURL)
	if err := jobs.Schedule(scheduler, cfg.DigestSchedule, digest); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("cron jobs scheduled", "digest", cfg.DigestSchedule)

	h := buildHandlers(cfg, db, store, producer, messageSvc, tokens, hub, dev)
	app := newApp(cfg, h, routes.Options{Tokens: tokens, Dev: dev, RedisURL: cfg.RedisURL})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server is running", "port", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func buildHandlers(
	cfg config.Config,
	db *gorm.DB,
	store storage.ObjectStore,
	producer *events.Producer,
	messageSvc *services.MessageService,
	tokens *auth.TokenIssuer,
	hub *websocket.Hub,
	dev *auth.DevProvider,
) routes.Handlers {
	expose := cfg.ExposeErrors
	media := services.NewMediaService(store, cfg.Storage.MediaContainer)

	certificates := services.NewCertificateService(repository.NewCertificateRepository(db), store, producer, cfg)
	internships := services.NewContentService(repository.NewCrudRepository[models.Internship](db), "internship", "is_open desc, created_at desc")
	projects := services.NewContentService(repository.NewCrudRepository[models.Project](db), "project", "featured desc, created_at desc")
	team := services.NewContentService(repository.NewCrudRepository[models.TeamMember](db), "team member", "display_order asc, created_at asc")
	showcase := services.NewContentService(repository.NewCrudRepository[models.ShowcaseItem](db), "showcase item", "created_at desc")
	admins := services.NewAdminService(repository.NewAdminRepository(db), tokens)

	return routes.Handlers{
		Certificates: handlers.NewCertificateHandler(certificates, expose),
		Internships: handlers.NewContentHandler[models.Internship, dto.InternshipRequest](internships, nil,
			handlers.ContentConfig[models.Internship, dto.InternshipResponse]{
				Resource:   "Internship",
				ToResponse: dto.FromInternship,
			}, expose),
		Projects: handlers.NewContentHandler[models.Project, dto.ProjectRequest](projects, media,
			handlers.ContentConfig[models.Project, dto.ProjectResponse]{
				Resource:   "Project",
				ImageField: "image",
				ImageKind:  "project",
				ImageURL:   func(p *models.Project) *string { return &p.ImageURL },
				ToResponse: dto.FromProject,
			}, expose),
		Team: handlers.NewContentHandler[models.TeamMember, dto.TeamMemberRequest](team, media,
			handlers.ContentConfig[models.TeamMember, dto.TeamMemberResponse]{
				Resource:   "Team member",
				ImageField: "photo",
				ImageKind:  "team",
				ImageURL:   func(m *models.TeamMember) *string { return &m.PhotoURL },
				ToResponse: dto.FromTeamMember,
			}, expose),
		Showcase: handlers.NewContentHandler[models.ShowcaseItem, dto.ShowcaseRequest](showcase, media,
			handlers.ContentConfig[models.ShowcaseItem, dto.ShowcaseResponse]{
				Resource:   "Showcase item",
				ImageField: "image",
				ImageKind:  "showcase",
				ImageURL:   func(s *models.ShowcaseItem) *string { return &s.ImageURL },
				ToResponse: dto.FromShowcaseItem,
			}, expose),
		Messages:    handlers.NewMessageHandler(messageSvc, expose),
		Auth:        handlers.NewAuthHandler(admins, expose),
		AdminSocket: handlers.NewAdminSocketHandler(hub, tokens, dev),
	}
}

func newApp(cfg config.Config, h routes.Handlers, opts routes.Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "6ixminds Labs API",
		BodyLimit:    bodyLimit,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: handlers.ErrorHandler(cfg.ExposeErrors),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CorsOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to the 6ixminds Labs API",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Setup(app, h, opts)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}
