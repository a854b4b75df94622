package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ricgcw/chms-backend/internal/bootstrap"
	"github.com/ricgcw/chms-backend/internal/config"
	"github.com/ricgcw/chms-backend/internal/services"
	"github.com/ricgcw/chms-backend/internal/store"
	"github.com/ricgcw/chms-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

// One-shot binary, run daily by Cloud Scheduler. A failed run is logged
// and swallowed; retries are the scheduler's concern.
func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	mstore := store.NewMemberStore(bs.Firestore)
	estore := store.NewEventStore(bs.Firestore)

	// service
	svc := services.NewReminderService(mstore, estore, cfg.ReminderLocation)

	log := bs.Log.With("job", "birthday-reminders", "run_id", uuid.NewString())
	ctx := logger.ToContext(context.Background(), log)

	if _, err := svc.Run(ctx); err != nil {
		log.Error("reminder run failed", "error", err)
	}
}
