// Package catalog serves the read-only template catalog the editor opens
// against. The editor never writes back; everything here is list/get.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"craftdeck/internal/database"
	"craftdeck/internal/editor"
)

// ErrTemplateNotFound is returned when no template matches the id.
var ErrTemplateNotFound = errors.New("template not found")

// Item is the catalog view of one template.
type Item struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Dimensions  string   `json:"dimensions,omitempty"`
}

// Provider reads templates from the database.
type Provider struct {
	db *gorm.DB
}

// NewProvider binds a provider to the catalog tables.
func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

// List returns the catalog, optionally filtered by category. Templates
// come back in insertion order so the gallery is stable.
func (p *Provider) List(ctx context.Context, category string) ([]Item, error) {
	query := p.db.WithContext(ctx).Model(&database.Template{}).Order("id ASC")
	if category != "" {
		if _, err := editor.ParseCategory(category); err != nil {
			return nil, err
		}
		query = query.Where("category = ?", category)
	}

	var rows []database.Template
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItem(row))
	}
	return items, nil
}

// Get returns one template by id.
func (p *Provider) Get(ctx context.Context, id uint) (Item, error) {
	var row database.Template
	if err := p.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Item{}, ErrTemplateNotFound
		}
		return Item{}, fmt.Errorf("query template %d: %w", id, err)
	}
	return toItem(row), nil
}

// Ref converts a catalog item into the slice of data the editor needs.
func (i Item) Ref() (editor.TemplateRef, error) {
	category, err := editor.ParseCategory(i.Category)
	if err != nil {
		return editor.TemplateRef{}, err
	}
	return editor.TemplateRef{
		ID:         i.ID,
		Title:      i.Title,
		Category:   category,
		ImageURL:   i.ImageURL,
		Dimensions: i.Dimensions,
	}, nil
}

func toItem(row database.Template) Item {
	var tags []string
	if len(row.Tags) > 0 {
		// Malformed tag payloads degrade to an empty list; the catalog
		// stays servable.
		_ = json.Unmarshal(row.Tags, &tags)
	}
	return Item{
		ID:          row.ID,
		Title:       row.Title,
		Category:    row.Category,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Tags:        tags,
		Dimensions:  row.Dimensions,
	}
}
