package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"catalog/collector/internal/config"
	"catalog/collector/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type CatalogClient interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]domain.Category, error)
	ProductsByCategory(ctx context.Context, categoryID string) (*domain.ProductPage, error)
	ProductsBySubcategory(ctx context.Context, subcategoryID string) (*domain.ProductPage, error)
}

type catalogClient struct {
	baseURL    string
	httpClient *resty.Client
}

func NewCatalogClient(cfg config.APIConfig) CatalogClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Accept", "application/json")

	return &catalogClient{
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

func (c *catalogClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	u := fmt.Sprintf("%s/categories", c.baseURL)

	categories, err := getJSON[[]domain.Category](ctx, c, "categories", u, "failed to fetch categories")
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched %d categories", len(categories))
	return categories, nil
}

func (c *catalogClient) ListSubcategories(ctx context.Context, categoryID string) ([]domain.Category, error) {
	u := fmt.Sprintf("%s/categories/%s/subcategories", c.baseURL, url.PathEscape(categoryID))

	subcategories, err := getJSON[[]domain.Category](ctx, c, "subcategories", u,
		fmt.Sprintf("failed to fetch subcategories of category %s", categoryID))
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched %d subcategories for category %s", len(subcategories), categoryID)
	return subcategories, nil
}

func (c *catalogClient) ProductsByCategory(ctx context.Context, categoryID string) (*domain.ProductPage, error) {
	u := fmt.Sprintf("%s/products?category=%s", c.baseURL, url.QueryEscape(categoryID))

	page, err := getJSON[domain.ProductPage](ctx, c, "category_products", u,
		fmt.Sprintf("failed to fetch products for category %s", categoryID))
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched product page for category %s: %d of %d products (limit %d)",
		categoryID, page.Count, page.TotalProducts, page.Limit)
	return &page, nil
}

func (c *catalogClient) ProductsBySubcategory(ctx context.Context, subcategoryID string) (*domain.ProductPage, error) {
	u := fmt.Sprintf("%s/products?subcategory=%s", c.baseURL, url.QueryEscape(subcategoryID))

	page, err := getJSON[domain.ProductPage](ctx, c, "subcategory_products", u,
		fmt.Sprintf("failed to fetch products for subcategory %s", subcategoryID))
	if err != nil {
		return nil, err
	}

	log.Debugf("Fetched product page for subcategory %s: %d of %d products (limit %d)",
		subcategoryID, page.Count, page.TotalProducts, page.Limit)
	return &page, nil
}

// getJSON performs a single GET against the catalog API and decodes the JSON
// body into T. One attempt only, success or typed failure.
func getJSON[T any](ctx context.Context, c *catalogClient, endpoint, requestURL, errPrefix string) (T, error) {
	var out T

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(requestURL)
	catalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		catalogRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return out, fmt.Errorf("%s: %w", errPrefix, err)
	}

	if resp.IsError() {
		catalogRequestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		body := resp.String()
		if body == "" {
			body = noResponseBody
		}
		return out, &StatusError{
			Prefix:     errPrefix,
			URL:        requestURL,
			StatusCode: resp.StatusCode(),
			Body:       body,
		}
	}

	if err := json.Unmarshal([]byte(resp.String()), &out); err != nil {
		catalogRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return out, fmt.Errorf("%s: failed to decode response from %s: %w", errPrefix, requestURL, err)
	}

	catalogRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return out, nil
}
