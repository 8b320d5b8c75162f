package storeapi

import (
	"github.com/storeware/stockroom/config"
	"github.com/storeware/stockroom/internal/inventory"
)

// API bundles the endpoint handlers with their injected collaborators.
type API struct {
	appConfig *config.AppConfig
	repo      inventory.ProductRepository
	bridge    *inventory.ExcelBridge
}

func NewAPI(appConfig *config.AppConfig, repo inventory.ProductRepository) *API {
	return &API{
		appConfig: appConfig,
		repo:      repo,
		bridge:    inventory.NewExcelBridge(repo),
	}
}

// RegisterRoutes attaches every inventory endpoint to the web server.
func (a *API) RegisterRoutes() {
	a.registerProductRoutes()
	a.registerAnalyticsRoutes()
	a.registerExcelRoutes()
}
