package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/ricgcw/chms-backend/internal/auth"
	"github.com/ricgcw/chms-backend/internal/bootstrap"
	"github.com/ricgcw/chms-backend/internal/config"
	"github.com/ricgcw/chms-backend/internal/handlers"
	"github.com/ricgcw/chms-backend/internal/models"
	"github.com/ricgcw/chms-backend/internal/response"
	"github.com/ricgcw/chms-backend/internal/router"
	"github.com/ricgcw/chms-backend/internal/services"
	"github.com/ricgcw/chms-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// authenticator
	creds, err := auth.Load(context.Background(), cfg.Credentials, cfg.CredentialsSecret, bs.Secrets)
	exitOnError("loading credentials failed", err, bs.Log)

	// stores
	mstore := store.NewMemberStore(bs.Firestore)
	estore := store.NewEventStore(bs.Firestore)
	astore := store.NewCollection[models.AttendanceRecord](bs.Firestore, "attendance")
	tstore := store.NewCollection[models.Transaction](bs.Firestore, "transactions")
	rstore := store.NewCollection[models.Resource](bs.Firestore, "resources")
	bstore := store.NewCollection[models.BibleStudy](bs.Firestore, "bible-studies")
	gstore := store.NewCollection[models.Target](bs.Firestore, "targets")
	cstore := store.NewContributionStore(bs.Firestore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.Env = cfg.Env
	deps.ResponseHandler = rh
	deps.Validate = validator.New()
	deps.Authenticator = auth.NewStatic(creds)
	deps.MemberSvc = services.NewCollectionService[*models.Member](mstore)
	deps.EventSvc = services.NewCollectionService[*models.Event](estore)
	deps.AttendanceSvc = services.NewCollectionService[*models.AttendanceRecord](astore)
	deps.TransactionSvc = services.NewCollectionService[*models.Transaction](tstore)
	deps.ResourceSvc = services.NewCollectionService[*models.Resource](rstore)
	deps.BibleStudySvc = services.NewCollectionService[*models.BibleStudy](bstore)
	deps.TargetSvc = services.NewCollectionService[*models.Target](gstore)
	deps.ContributionSvc = services.NewContributionService(cstore)

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("api listening", "port", cfg.Port, "env", cfg.Env)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
