package main

import (
	"context"
	"log"
	"time"

	config "github.com/alexsterin2005-wq/amtennis/configs"
	"github.com/alexsterin2005-wq/amtennis/database"
	"github.com/alexsterin2005-wq/amtennis/handlers"
	"github.com/alexsterin2005-wq/amtennis/jobs"
	"github.com/alexsterin2005-wq/amtennis/notifications"
	"github.com/alexsterin2005-wq/amtennis/routes"
	"github.com/alexsterin2005-wq/amtennis/services"
	"github.com/alexsterin2005-wq/amtennis/storage"
	"github.com/alexsterin2005-wq/amtennis/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	db := database.Connect()
	database.Migrate(db)
	database.SeedCoach(db)

	bookingStore := storage.NewGormBookingStore(db)
	eventStore := storage.NewGormCalendarEventStore(db)

	var notifier services.Notifier = notifications.NoopNotifier{}
	if brevo := notifications.NewBrevoService(
		config.Config("BREVO_API_KEY"),
		config.Config("EMAIL_SENDER"),
		config.Config("EMAIL_SENDER_NAME"),
	); brevo != nil {
		notifier = brevo
	}

	bookingSvc := services.NewBookingService(bookingStore, eventStore, notifier, config.Config("BUSINESS_EMAIL"))
	bookingSvc.OnChange(websocket.BroadcastRefresh)
	reportSvc := services.NewReportService(bookingStore)
	weatherSvc := services.NewWeatherService()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := bookingSvc.Reload(ctx); err != nil {
		log.Printf("⚠️ Initial booking load failed, starting with an empty cache: %v", err)
	}
	cancel()

	c := cron.New()
	reminders := jobs.NewReminderJob(bookingStore, notifier)
	c.AddFunc("0 18 * * *", reminders.SendLessonReminders)
	go c.Start()
	log.Println("✅ Cron job for lesson reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "AM Tennis Academy",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Disposition, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/New_York",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to AM Tennis Academy API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(db))
	routes.BookingRoutes(app, handlers.NewBookingHandler(bookingSvc))
	routes.CalendarRoutes(app, handlers.NewCalendarHandler(bookingSvc))
	routes.ReportRoutes(app, handlers.NewReportHandler(reportSvc))
	routes.WeatherRoutes(app, handlers.NewWeatherHandler(weatherSvc))

	app.Get("/ws", websocket.Handler())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
