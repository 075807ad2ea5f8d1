package handlers

import (
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/app/config"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/domain/concierge/engine"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/db/postgres"
	"github.com/Shiminize/lab-jewelry-genz-sub019/internal/infra/sessionstore"
)

type Handlers struct {
	Cfg      config.Config
	Engine   *engine.Engine
	Sessions sessionstore.Store
	DB       *postgres.DB // nil in stub mode
	DataMode string
}

func New(cfg config.Config, eng *engine.Engine, sessions sessionstore.Store, db *postgres.DB, dataMode string) *Handlers {
	return &Handlers{
		Cfg:      cfg,
		Engine:   eng,
		Sessions: sessions,
		DB:       db,
		DataMode: dataMode,
	}
}
