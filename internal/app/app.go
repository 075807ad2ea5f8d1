package app

import (
	"log"
	"net/http"
	"time"

	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/config"
	apphttp "github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/http"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/http/handlers"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/engine"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/handler"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/presets"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/provider"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/db/postgres"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/sessionstore"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/stub"
)

func Run() {
	cfg := config.MustLoad()

	deps := handler.Deps{}
	var db *postgres.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		deps.Catalog = postgres.NewCatalog(db)
		deps.Orders = postgres.NewOrders(db)
		deps.Support = postgres.NewSupport(db)
		deps.DataMode = provider.ModeLive
	} else {
		providers := stub.New()
		deps.Catalog = providers
		deps.Orders = providers
		deps.Support = providers
		deps.DataMode = provider.ModeStub
		log.Printf("no DATABASE_URL, serving stub data")
	}

	catalog, err := presets.Load(cfg.QuickStartsPath)
	if err != nil {
		log.Printf("quick starts: %v, continuing without presets", err)
		catalog = presets.Empty()
	}
	deps.Presets = catalog

	var sessions sessionstore.Store
	if cfg.RedisAddr != "" {
		redisStore, err := sessionstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		sessions = sessionstore.NewMemory()
		log.Printf("no REDIS_ADDR, sessions held in memory")
	}

	h := handlers.New(cfg, engine.New(deps), sessions, db, deps.DataMode)
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
