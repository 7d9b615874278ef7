// Package view derives the ordered listing shown for a folder from a snapshot
// of the item tree.
package view

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	"github.com/rpggio/stowage/internal/domain/item"
)

// ListVisibleItems filters items to q.FolderID, keeps those carrying any of
// q.TagIDs, keeps those whose name contains q.Search ignoring case, sorts them
// and finally moves folders ahead of everything else. The input is not
// modified.
func ListVisibleItems(items []item.Item, q Query) []item.Item {
	var needle string
	fold := cases.Fold()
	if q.Search != "" {
		needle = fold.String(q.Search)
	}

	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if !it.InParent(q.FolderID) {
			continue
		}
		if len(q.TagIDs) > 0 && !it.HasAnyTag(q.TagIDs) {
			continue
		}
		if q.Search != "" && !strings.Contains(fold.String(it.Name), needle) {
			continue
		}
		out = append(out, it)
	}

	compare := comparator(q)
	slices.SortStableFunc(out, compare)
	slices.SortStableFunc(out, func(a, b item.Item) int {
		return folderRank(a) - folderRank(b)
	})
	return out
}

func comparator(q Query) func(a, b item.Item) int {
	var by func(a, b item.Item) int
	switch q.SortField {
	case SortByType:
		by = func(a, b item.Item) int { return strings.Compare(a.TypeLabel(), b.TypeLabel()) }
	case SortByModifiedAt:
		by = func(a, b item.Item) int { return a.ModifiedAt.Compare(b.ModifiedAt) }
	case SortBySize:
		by = func(a, b item.Item) int { return cmp.Compare(a.Size, b.Size) }
	default:
		coll := collate.New(q.Locale)
		by = func(a, b item.Item) int { return coll.CompareString(a.Name, b.Name) }
	}
	if q.Direction == Descending {
		return func(a, b item.Item) int { return -by(a, b) }
	}
	return by
}

func folderRank(it item.Item) int {
	if it.IsFolder() {
		return 0
	}
	return 1
}
