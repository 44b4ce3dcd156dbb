package container

import (
	"context"

	"catalog/collector/internal/client"
	"catalog/collector/internal/config"
	"catalog/collector/internal/service"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.CatalogClient
	Service *service.Service
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	catalogClient := client.NewCatalogClient(cfg.API)

	return &Container{
		Config:  cfg,
		Client:  catalogClient,
		Service: service.NewService(catalogClient),
	}, nil
}

// Run fetches the category list and collects products from every category.
// Returns the collection error, if any, for the caller to log.
func (c *Container) Run(ctx context.Context) error {
	categories, err := c.Client.ListCategories(ctx)
	if err != nil {
		log.Errorf("❌ Failed to fetch category list: %v", err)
		return err
	}

	if len(categories) == 0 {
		log.Info("No categories found, nothing to collect")
		return nil
	}

	log.Infof("🔄 Collecting products from %d categories", len(categories))

	products, err := c.Service.CollectAll(ctx, categories)
	if err != nil {
		return err
	}

	log.Infof("✅ Collected %d products in total", len(products))
	return nil
}
