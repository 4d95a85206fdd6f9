package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	_ "Backend-ZAB-Portal/docs"
	"Backend-ZAB-Portal/src/config"
	"Backend-ZAB-Portal/src/controllers"
	"Backend-ZAB-Portal/src/database"
	"Backend-ZAB-Portal/src/jobs"
	"Backend-ZAB-Portal/src/routes"
	"Backend-ZAB-Portal/src/seeder"
	"Backend-ZAB-Portal/src/services/email"
	"Backend-ZAB-Portal/src/services/feedback"
	"Backend-ZAB-Portal/src/services/notify"
	"Backend-ZAB-Portal/src/services/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "zab-portal",
		Short:        "Roster and feedback portal API",
		SilenceUsage: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "worker",
		Short: "Run the email and retention worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return worker()
		},
	})
	var withFeedback bool
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a sample roster for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), withFeedback)
		},
	}
	seedCmd.Flags().BoolVar(&withFeedback, "with-feedback", false, "also submit one pending feedback per controller")
	cmd.AddCommand(seedCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zab-portal version %s\n", Version)
		},
	})

	return cmd
}

func connect(cfg *config.Config) error {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	if err := database.InitRedis(cfg.RedisURI); err != nil {
		log.Println("⚠️", err)
	}
	return nil
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET not set, using development secret")
	}
	if err := connect(cfg); err != nil {
		return err
	}

	// email ถูกส่งโดย worker ผ่าน SMTP; ถ้าไม่มี SMTP ก็ไม่ต้อง enqueue
	var queue notify.Enqueuer
	if len(cfg.SMTP.Missing()) == 0 {
		if client := database.InitAsynq(); client != nil {
			queue = client
			defer database.CloseAsynq()
		}
	}
	sinks := notify.NewSinks(notify.NewMongoNotificationStore(database.NotificationCollection), queue, cfg.SMTP)
	dispatcher := notify.NewDispatcher(sinks...)
	log.Printf("✅ Notification sinks: %v", dispatcher.Sinks())

	directory := roster.NewMongoDirectory(database.UserCollection)
	svc := feedback.NewService(feedback.NewMongoStore(database.FeedbackCollection), directory, dispatcher)

	// สร้าง app instance
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	routes.InitRoutes(app, controllers.NewFeedbackController(svc), controllers.NewRosterController(directory))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		_ = app.Shutdown()
	}()

	log.Println("Server is running on port " + cfg.AppURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		return err
	}
	return database.DisconnectMongoDB(context.Background())
}

func worker() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := connect(cfg); err != nil {
		return err
	}
	defer database.DisconnectMongoDB(context.Background())

	if database.RedisClient == nil {
		return fmt.Errorf("worker requires REDIS_URI")
	}

	var sender email.MailSender
	if s, err := email.NewSMTPSender(cfg.SMTP); err != nil {
		log.Println("⚠️ Email disabled:", err)
	} else {
		sender = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return jobs.RunWorker(ctx, jobs.WorkerOptions{
		Redis:         database.RedisConnOpt(),
		Sender:        sender,
		FrontendURL:   cfg.FrontendURL,
		Store:         feedback.NewMongoStore(database.FeedbackCollection),
		RetentionDays: cfg.RejectedRetentionDays,
	})
}

func seed(ctx context.Context, withFeedback bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer database.DisconnectMongoDB(context.Background())

	n, err := seeder.SeedSampleRoster(ctx, database.UserCollection)
	if err != nil {
		return err
	}
	log.Printf("✅ Seeded %d controllers", n)
	if !withFeedback {
		return nil
	}

	directory := roster.NewMongoDirectory(database.UserCollection)
	ctrls, err := directory.ListActive(ctx)
	if err != nil {
		return err
	}
	// submit ไม่ส่ง notification จึงไม่ต้องมี sink
	svc := feedback.NewService(feedback.NewMongoStore(database.FeedbackCollection), directory, notify.NewDispatcher())
	n, err = seeder.SeedSampleFeedback(ctx, svc, ctrls)
	log.Printf("✅ Seeded %d pending feedback", n)
	return err
}
