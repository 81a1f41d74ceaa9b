package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/api/gridapi"
	"github.com/katalvlaran/gridpath/api/i"
	"github.com/katalvlaran/gridpath/config"
)

func main() {
	cfg := config.MustLoad()
	gin.SetMode(cfg.GinMode)

	store := gridapi.NewStore(gridapi.StoreConfig{
		MaxGrids: cfg.MaxSessions,
		MaxRows:  cfg.MaxRows,
		MaxCols:  cfg.MaxCols,
	})
	log.Printf("%s%sGrid store ready: %d sessions, grids up to %dx%d%s",
		config.LogInfoColor, config.LogPrefixInfo, cfg.MaxSessions, cfg.MaxRows, cfg.MaxCols, config.LogColorReset)

	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []i.Controller{gridapi.NewController(store, cfg.DefaultRows, cfg.DefaultCols)},
	})

	log.Printf("%s%sListening on %s%s", config.LogInfoColor, config.LogPrefixInfo, cfg.Addr(), config.LogColorReset)
	if err := router.Run(); err != nil {
		log.Fatalf("%s%sServer stopped: %v%s", config.LogErrorColor, config.LogPrefixError, err, config.LogColorReset)
	}
}
