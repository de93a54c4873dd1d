package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"craftdeck/internal/database"
	"craftdeck/internal/editor"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.Template{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedPopulatesAllCategories(t *testing.T) {
	db := newTestDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	p := NewProvider(db)
	all, err := p.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 20 {
		t.Fatalf("seeded %d templates, want 20", len(all))
	}

	for _, cat := range []string{"resume", "business_card", "social_media", "professional_photo"} {
		items, err := p.List(context.Background(), cat)
		if err != nil {
			t.Fatalf("list %s: %v", cat, err)
		}
		if len(items) != 5 {
			t.Errorf("category %s has %d templates, want 5", cat, len(items))
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	db.Model(&database.Template{}).Count(&count)
	if count != 20 {
		t.Fatalf("count = %d after double seed, want 20", count)
	}
}

func TestListRejectsUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	p := NewProvider(db)
	if _, err := p.List(context.Background(), "poster"); err == nil {
		t.Fatalf("unknown category must error")
	}
}

func TestGetDecodesTags(t *testing.T) {
	db := newTestDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	p := NewProvider(db)

	all, _ := p.List(context.Background(), "resume")
	item, err := p.Get(context.Background(), all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.Title != "Minimalist Executive Resume" {
		t.Errorf("title = %q", item.Title)
	}
	if len(item.Tags) != 3 || item.Tags[0] != "minimal" {
		t.Errorf("tags = %v", item.Tags)
	}
	if item.Dimensions != "A4" {
		t.Errorf("dimensions = %q", item.Dimensions)
	}
}

func TestGetMissingTemplate(t *testing.T) {
	db := newTestDB(t)
	p := NewProvider(db)
	if _, err := p.Get(context.Background(), 999); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("err = %v, want ErrTemplateNotFound", err)
	}
}

func TestRefMapsCategory(t *testing.T) {
	item := Item{ID: 7, Title: "Card", Category: "business_card", ImageURL: "u", Dimensions: `3.5" x 2"`}
	ref, err := item.Ref()
	if err != nil {
		t.Fatalf("ref: %v", err)
	}
	if ref.Category != editor.CategoryBusinessCard || ref.ID != 7 {
		t.Fatalf("ref = %+v", ref)
	}

	if _, err := (Item{Category: "bogus"}).Ref(); err == nil {
		t.Fatalf("bogus category must not convert")
	}
}
