package admin

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopverse/storefront/internal/domain/catalog"
	"github.com/shopverse/storefront/internal/domain/shared"
	"github.com/shopverse/storefront/internal/infrastructure/notify"
)

// placeholderImage is used for entries created without an image of their own
const placeholderImage = "assets/products/placeholder.jpg"

// ProductInput carries the editable fields of a catalog entry.
// Price and rating arrive as floats from the form layer and are converted
// to exact decimals on write.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,min=3"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

// Stats is the derived dashboard summary, recomputed from the working copy
// on every read.
type Stats struct {
	TotalProducts int
	TotalValue    decimal.Decimal // sum of price x stock
	AverageRating float64
	LowStock      int // entries with stock below 10
}

// lowStockThreshold marks entries that need restocking on the dashboard
const lowStockThreshold = 10

// Service is the admin inventory editor. It operates on a working copy of
// the catalog, separate from the read-only repository used for browsing, so
// edits never leak into concurrently rendered views. Authorization is the
// caller's concern: the service trusts the access-control gate in front of
// it.
type Service struct {
	products []catalog.Product
	nextID   int
	validate *validator.Validate
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewService creates an editor over a working copy of the given catalog
func NewService(workingCopy []catalog.Product, notifier notify.Notifier, logger *zap.Logger) *Service {
	products := make([]catalog.Product, len(workingCopy))
	copy(products, workingCopy)

	nextID := 1
	for _, p := range products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	return &Service{
		products: products,
		nextID:   nextID,
		validate: newValidator(),
		notifier: notifier,
		logger:   logger.Named("admin"),
	}
}

// Create validates the fields and appends a new entry to the working copy.
// Identifiers are a high-water mark: a new id is strictly greater than
// every id ever assigned, so deleted ids are never recycled. Review count
// starts at zero and the image defaults to a placeholder reference.
func (s *Service) Create(input ProductInput) (catalog.Product, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return catalog.Product{}, err
	}

	product := catalog.Product{
		ID:          s.nextID,
		Name:        input.Name,
		Description: input.Description,
		Price:       decimal.NewFromFloat(input.Price),
		Image:       placeholderImage,
		Category:    input.Category,
		Stock:       input.Stock,
		Rating:      input.Rating,
		Reviews:     0,
	}
	s.nextID++
	s.products = append(s.products, product)

	s.notifier.Publish(notify.Notification{
		Title:       "Product added",
		Description: fmt.Sprintf("%s has been added successfully", product.Name),
		Severity:    notify.SeveritySuccess,
	})
	s.logger.Info("product created", zap.Int("product_id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// Update validates the fields and replaces the editable fields of the
// matching entry. Identifier, image, and review count are preserved.
func (s *Service) Update(id int, input ProductInput) (catalog.Product, error) {
	if err := asValidationError(s.validate.Struct(input)); err != nil {
		return catalog.Product{}, err
	}

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		s.products[i].Name = input.Name
		s.products[i].Description = input.Description
		s.products[i].Price = decimal.NewFromFloat(input.Price)
		s.products[i].Category = input.Category
		s.products[i].Stock = input.Stock
		s.products[i].Rating = input.Rating

		s.notifier.Publish(notify.Notification{
			Title:       "Product updated",
			Description: fmt.Sprintf("%s has been updated successfully", input.Name),
			Severity:    notify.SeveritySuccess,
		})
		s.logger.Info("product updated", zap.Int("product_id", id))
		return s.products[i], nil
	}

	return catalog.Product{}, shared.ErrNotFound
}

// Delete removes the entry from the working copy; an absent id is a no-op
func (s *Service) Delete(id int) bool {
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		removed := s.products[i]
		s.products = append(s.products[:i], s.products[i+1:]...)

		s.notifier.Publish(notify.Notification{
			Title:       "Product deleted",
			Description: fmt.Sprintf("%s has been removed", removed.Name),
			Severity:    notify.SeverityDestructive,
		})
		s.logger.Info("product deleted", zap.Int("product_id", id))
		return true
	}
	return false
}

// Products returns a copy of the working copy in insertion order
func (s *Service) Products() []catalog.Product {
	copied := make([]catalog.Product, len(s.products))
	copy(copied, s.products)
	return copied
}

// FindByID returns the working-copy entry with the given identifier
func (s *Service) FindByID(id int) (catalog.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Product{}, shared.ErrNotFound
}

// Stats recomputes the dashboard summary from the current working copy
func (s *Service) Stats() Stats {
	stats := Stats{
		TotalProducts: len(s.products),
		TotalValue:    decimal.Zero,
	}

	ratingSum := 0.0
	for _, p := range s.products {
		stats.TotalValue = stats.TotalValue.Add(p.InventoryValue())
		ratingSum += p.Rating
		if p.LowStock(lowStockThreshold) {
			stats.LowStock++
		}
	}
	if stats.TotalProducts > 0 {
		stats.AverageRating = ratingSum / float64(stats.TotalProducts)
	}
	return stats
}
