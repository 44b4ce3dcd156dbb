package domain

// Category identifies a node in the two-level catalog hierarchy. The API
// uses the same shape for top-level categories and their subcategories.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Product is an opaque document carried through from the API untouched.
// No schema is enforced beyond it being a JSON object.
type Product map[string]any

// ProductPage is a single page returned by the products endpoint.
type ProductPage struct {
	TotalProducts int       `json:"totalProducts"` // authoritative server-side count for the query
	Count         int       `json:"count"`         // items returned on this page
	Limit         int       `json:"limit"`         // per-call page size
	Products      []Product `json:"products"`
}

// Exhaustive reports whether this single page covers everything the server
// has for the query.
func (p *ProductPage) Exhaustive() bool {
	return p.TotalProducts <= p.Limit
}
