package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexpan006/blockdash-api/internal/domain"
)

// CollectionRegistry defines the interface for tracked-collection lookups.
// The registry is the closed set of collections the system synchronizes;
// every collection-scoped operation resolves its slug here first.
//
//go:generate mockgen -source=collections.go -destination=../mocks/collection_registry.go -package=mocks -mock_names=CollectionRegistry=MockCollectionRegistry
type CollectionRegistry interface {
	// Get resolves a collection slug. Returns domain.ErrCollectionNotFound
	// for slugs outside the tracked set.
	Get(slug string) (*domain.Collection, error)

	// All returns every tracked collection in file order
	All() []domain.Collection
}

// collectionRegistry is the internal implementation of CollectionRegistry
type collectionRegistry struct {
	ordered []domain.Collection
	// Fast lookup map: lowercase slug -> collection
	bySlug map[string]*domain.Collection
}

// LoadCollections loads the collection registry from a JSON seed file
func LoadCollections(filePath string) (CollectionRegistry, error) {
	// Read the file using the absolute path
	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read collections file: %w", err)
	}

	// Parse JSON
	var collections []domain.Collection
	if err := json.Unmarshal(data, &collections); err != nil {
		return nil, fmt.Errorf("failed to parse collections JSON: %w", err)
	}

	// Build lookup map
	r := &collectionRegistry{
		ordered: make([]domain.Collection, 0, len(collections)),
		bySlug:  make(map[string]*domain.Collection),
	}

	for _, c := range collections {
		slug := strings.ToLower(strings.TrimSpace(c.Slug))
		if slug == "" {
			return nil, fmt.Errorf("collections file contains an entry without a slug")
		}
		if _, exists := r.bySlug[slug]; exists {
			return nil, fmt.Errorf("collections file contains duplicate slug %s", slug)
		}

		c.Slug = slug
		c.ContractAddress = domain.NormalizeAddress(c.ContractAddress)
		r.ordered = append(r.ordered, c)
		r.bySlug[slug] = &r.ordered[len(r.ordered)-1]
	}

	return r, nil
}

// Get resolves a collection slug
func (r *collectionRegistry) Get(slug string) (*domain.Collection, error) {
	c, ok := r.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, domain.ErrCollectionNotFound
	}
	return c, nil
}

// All returns every tracked collection in file order
func (r *collectionRegistry) All() []domain.Collection {
	return r.ordered
}
