package catalog

import (
	"github.com/shopverse/storefront/internal/domain/shared"
)

// Repository holds the fixed, ordered product list loaded at process start.
// It is read-only: browsing and querying never mutate it. The admin editor
// works on its own copy obtained via All().
type Repository struct {
	products []Product
}

// NewRepository creates a repository over the given ordered product list
func NewRepository(products []Product) *Repository {
	copied := make([]Product, len(products))
	copy(copied, products)
	return &Repository{products: copied}
}

// All returns a copy of the catalog in load order
func (r *Repository) All() []Product {
	copied := make([]Product, len(r.products))
	copy(copied, r.products)
	return copied
}

// Len returns the number of products in the catalog
func (r *Repository) Len() int {
	return len(r.products)
}

// FindByID returns the product with the given identifier
func (r *Repository) FindByID(id int) (Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, shared.ErrNotFound
}
