package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/SalonHelios/salon-scheduler/internal/config"
	"github.com/SalonHelios/salon-scheduler/internal/db"
	"github.com/SalonHelios/salon-scheduler/internal/infra/repository"
	"github.com/SalonHelios/salon-scheduler/internal/logging"
	"github.com/SalonHelios/salon-scheduler/internal/middleware"
	"github.com/SalonHelios/salon-scheduler/internal/notify"
	"github.com/SalonHelios/salon-scheduler/internal/routes"
)

func main() {

	// ======================================================
	// CONFIG
	// ======================================================
	_ = godotenv.Load()
	cfg := config.Load()

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// ======================================================
	// DATABASE
	// ======================================================
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	// ======================================================
	// NOTIFICATIONS
	// ======================================================
	sender := &notify.GatewaySender{
		APIURL: cfg.SMSAPIURL,
		APIKey: cfg.SMSAPIKey,
		From:   cfg.SalonName,
		DryRun: cfg.DevMode(),
		Log:    log,
	}
	dispatcher := notify.NewDispatcher(database, sender, log)
	defer dispatcher.Stop()

	// ======================================================
	// REMINDER JOB
	// ======================================================
	repo := repository.NewAppointmentGormRepository(database)
	messenger := notify.Messenger{SalonName: cfg.SalonName}
	sweep := notify.NewReminderSweep(repo, dispatcher, messenger, log)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReminderCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		count, err := sweep.Run(ctx, time.Now())
		if err != nil {
			log.Error().Err(err).Msg("reminder sweep failed")
			return
		}
		log.Info().Int("reminders", count).Msg("reminder sweep finished")
	}); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.ReminderCron).Msg("invalid reminder schedule")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// ======================================================
	// HTTP SERVER
	// ======================================================
	if !cfg.DevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg, dispatcher, log)

	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Environment).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
