package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"property-keeper/internal/config"
	"property-keeper/internal/notify"
	"property-keeper/internal/repository"
	"property-keeper/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	taskSvc := service.NewTaskService(db, taskRepo, completionRepo, workerRepo)
	propertySvc := service.NewPropertyService(propertyRepo)

	if properties, err := propertySvc.List(ctx); err == nil {
		log.Printf("[info] managing %d properties", len(properties))
	}

	var sender notify.Sender = notify.LogSender{}
	if cfg.TelegramToken != "" {
		tg, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		sender = tg
	}

	scheduler, err := notify.NewLocalScheduler(sender, cfg.ReminderPoll)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	syncer := service.NewReminderSyncer(scheduler)

	runSync := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tasks, err := taskSvc.ListActive(jobCtx)
		if err != nil {
			log.Printf("[warn] load active tasks: %v", err)
			return
		}
		if err := syncer.Sync(jobCtx, tasks, time.Now()); err != nil {
			log.Printf("[warn] reminder sync: %v", err)
		}
	}

	jobs := cron.New()
	if _, err := jobs.AddFunc(fmt.Sprintf("@every %s", cfg.SyncInterval), runSync); err != nil {
		log.Fatalf("schedule sync: %v", err)
	}

	runSync()
	scheduler.Start()
	jobs.Start()

	log.Println("Property keeper started.")
	<-ctx.Done()

	<-jobs.Stop().Done()
	scheduler.Stop()
	log.Println("Shutdown complete.")
}
