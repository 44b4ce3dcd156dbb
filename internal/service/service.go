package service

import (
	"context"
	"fmt"

	"catalog/collector/internal/client"
	"catalog/collector/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Service walks the catalog hierarchy and aggregates products into one flat
// collection. Traversal is strictly sequential: categories in API list order,
// subcategories in API list order, one fetch at a time. The accumulator has a
// single writer, the CollectAll invocation that created it.
type Service struct {
	client client.CatalogClient
}

func NewService(client client.CatalogClient) *Service {
	return &Service{
		client: client,
	}
}

// CollectAll collects products from every category in order. On the first
// failure anywhere in the walk, everything gathered so far is discarded and
// an empty collection is returned together with the error.
func (s *Service) CollectAll(ctx context.Context, categories []domain.Category) ([]domain.Product, error) {
	products := make([]domain.Product, 0)

	for _, category := range categories {
		if err := s.collectCategory(ctx, category, &products); err != nil {
			log.Errorf("❌ Failed to collect category %s (%s), discarding %d collected products: %v",
				category.Name, category.ID, len(products), err)
			return make([]domain.Product, 0), fmt.Errorf("failed to collect category %s: %w", category.ID, err)
		}
	}

	return products, nil
}

// collectCategory fetches a category's product page. A page that already
// covers the whole category is appended as-is; otherwise the category's own
// page is discarded and its subcategories are collected one by one.
func (s *Service) collectCategory(ctx context.Context, category domain.Category, acc *[]domain.Product) error {
	page, err := s.client.ProductsByCategory(ctx, category.ID)
	if err != nil {
		return err
	}

	if page.Exhaustive() {
		*acc = append(*acc, page.Products...)
		log.Infof("✅ Category %s (%s): collected %d products in a single page",
			category.Name, category.ID, len(page.Products))
		return nil
	}

	log.Infof("🔄 Category %s (%s) has %d products but limit is %d, collecting per subcategory",
		category.Name, category.ID, page.TotalProducts, page.Limit)

	subcategories, err := s.client.ListSubcategories(ctx, category.ID)
	if err != nil {
		return err
	}

	for _, subcategory := range subcategories {
		if err := s.collectSubcategory(ctx, subcategory, acc); err != nil {
			return err
		}
	}

	return nil
}

// collectSubcategory appends the subcategory's first page unconditionally.
// Anything beyond the first page is a known limitation, logged and left
// uncollected.
func (s *Service) collectSubcategory(ctx context.Context, subcategory domain.Category, acc *[]domain.Product) error {
	page, err := s.client.ProductsBySubcategory(ctx, subcategory.ID)
	if err != nil {
		return err
	}

	*acc = append(*acc, page.Products...)

	if !page.Exhaustive() {
		log.Warnf("⚠️ Subcategory %s (%s) has %d products but limit is %d, collection may be incomplete",
			subcategory.Name, subcategory.ID, page.TotalProducts, page.Limit)
		return nil
	}

	log.Infof("✅ Subcategory %s (%s): collected %d products",
		subcategory.Name, subcategory.ID, len(page.Products))
	return nil
}
