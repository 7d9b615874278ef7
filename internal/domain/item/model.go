package item

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/rpggio/stowage/internal/domain/schema"
)

// Kind discriminates the item variants.
type Kind string

const (
	KindFolder    Kind = "folder"
	KindDocument  Kind = "document"
	KindInventory Kind = "inventory"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindFolder, KindDocument, KindInventory:
		return true
	}
	return false
}

// DocumentType is the file kind of an uploaded document, used for display.
type DocumentType string

const (
	DocumentCSV      DocumentType = "csv"
	DocumentXLSX     DocumentType = "xlsx"
	DocumentPDF      DocumentType = "pdf"
	DocumentMarkdown DocumentType = "md"
)

// AllowedExtensions lists the upload extensions in display order.
var AllowedExtensions = []string{".csv", ".xlsx", ".pdf", ".md"}

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentCSV, DocumentXLSX, DocumentPDF, DocumentMarkdown:
		return true
	}
	return false
}

// DocumentTypeFromFileName maps a file name's extension to a document type.
func DocumentTypeFromFileName(name string) (DocumentType, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(AllowedExtensions, ext) {
		return "", false
	}
	return DocumentType(strings.TrimPrefix(ext, ".")), true
}

// InventoryTypeLabel is the type label shown for inventories.
const InventoryTypeLabel = "experience-inventory"

// Document holds the document-only fields.
type Document struct {
	Type DocumentType `json:"type" yaml:"type"`
}

// Inventory holds the schema and rows of an inventory item.
type Inventory struct {
	Schema  schema.Schema   `json:"schema" yaml:"schema"`
	Entries []schema.Record `json:"entries" yaml:"entries"`
}

// Item is a node of the asset tree. Exactly one of Document and Inventory is
// set for those kinds; folders carry neither.
type Item struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Kind       Kind       `json:"kind"`
	Tags       []string   `json:"tags"`
	ModifiedAt time.Time  `json:"modified_at"`
	Size       int64      `json:"size"`
	ParentID   *string    `json:"parent_id"`
	Document   *Document  `json:"document,omitempty"`
	Inventory  *Inventory `json:"inventory,omitempty"`
}

// IsFolder reports whether the item is a folder.
func (it Item) IsFolder() bool { return it.Kind == KindFolder }

// TypeLabel is the label used when sorting by type.
func (it Item) TypeLabel() string {
	switch it.Kind {
	case KindFolder:
		return string(KindFolder)
	case KindDocument:
		if it.Document != nil {
			return string(it.Document.Type)
		}
		return string(KindDocument)
	case KindInventory:
		return InventoryTypeLabel
	default:
		return string(it.Kind)
	}
}

// HasAnyTag reports whether the item carries at least one of ids.
func (it Item) HasAnyTag(ids []string) bool {
	for _, t := range it.Tags {
		if slices.Contains(ids, t) {
			return true
		}
	}
	return false
}

// InParent reports whether the item sits directly under parentID (nil = root).
func (it Item) InParent(parentID *string) bool {
	if parentID == nil {
		return it.ParentID == nil
	}
	return it.ParentID != nil && *it.ParentID == *parentID
}

// Clone returns a deep copy, so callers never share slices with the store.
func (it Item) Clone() Item {
	out := it
	out.Tags = append([]string{}, it.Tags...)
	if it.ParentID != nil {
		p := *it.ParentID
		out.ParentID = &p
	}
	if it.Document != nil {
		d := *it.Document
		out.Document = &d
	}
	if it.Inventory != nil {
		inv := Inventory{
			Schema:  it.Inventory.Schema.Clone(),
			Entries: make([]schema.Record, len(it.Inventory.Entries)),
		}
		for i, e := range it.Inventory.Entries {
			inv.Entries[i] = e.Clone()
		}
		out.Inventory = &inv
	}
	return out
}
