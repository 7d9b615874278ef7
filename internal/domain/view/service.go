package view

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/rpggio/stowage/internal/domain/item"
)

// ItemLister returns a consistent snapshot of every item.
type ItemLister interface {
	List(ctx context.Context) ([]item.Item, error)
}

// Service answers view queries against the current store.
type Service struct {
	items  ItemLister
	locale language.Tag
}

// NewService creates a view service collating names for locale.
func NewService(items ItemLister, locale language.Tag) *Service {
	return &Service{items: items, locale: locale}
}

// List takes one snapshot of the store and derives the listing for q. A query
// without a locale uses the service locale.
func (s *Service) List(ctx context.Context, q Query) ([]item.Item, error) {
	snapshot, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	if q.Locale == language.Und {
		q.Locale = s.locale
	}
	return ListVisibleItems(snapshot, q), nil
}

// ParseSortField maps user input to a sort field, defaulting to name.
func ParseSortField(s string) SortField {
	switch f := SortField(s); f {
	case SortByName, SortByType, SortByModifiedAt, SortBySize:
		return f
	case "modifiedAt", "modified":
		return SortByModifiedAt
	}
	return SortByName
}

// ParseDirection maps user input to a direction, defaulting to ascending.
func ParseDirection(s string) Direction {
	if Direction(s) == Descending {
		return Descending
	}
	return Ascending
}
