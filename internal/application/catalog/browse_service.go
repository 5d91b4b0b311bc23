package catalog

import (
	"go.uber.org/zap"

	"github.com/shopverse/storefront/internal/domain/catalog"
)

// BrowseService exposes the read-only catalog to the storefront: the full
// listing, filtered/sorted query results, and the category list. It holds
// no state of its own; every read is derived from the repository.
type BrowseService struct {
	repo   *catalog.Repository
	logger *zap.Logger
}

// NewBrowseService creates a browse service over the given repository
func NewBrowseService(repo *catalog.Repository, logger *zap.Logger) *BrowseService {
	return &BrowseService{
		repo:   repo,
		logger: logger.Named("browse"),
	}
}

// Products returns the full catalog in load order
func (s *BrowseService) Products() []catalog.Product {
	return s.repo.All()
}

// Product returns the catalog entry with the given identifier
func (s *BrowseService) Product(id int) (catalog.Product, error) {
	return s.repo.FindByID(id)
}

// Search returns the filtered and sorted catalog view for the given filter.
// An empty result is a valid outcome, not a failure.
func (s *BrowseService) Search(f catalog.Filter) []catalog.Product {
	result := catalog.Search(s.repo.All(), f)
	s.logger.Debug("catalog searched",
		zap.String("search", f.Search),
		zap.String("category", f.Category),
		zap.String("sort", string(f.Sort)),
		zap.Int("found", len(result)),
	)
	return result
}

// Categories returns the distinct categories with the synthetic "all" entry
func (s *BrowseService) Categories() []string {
	return catalog.Categories(s.repo.All())
}
