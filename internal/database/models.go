package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Template is one entry of the read-only template catalog that editor
// sessions open against.
type Template struct {
	gorm.Model
	Title       string         `gorm:"size:255"`
	Category    string         `gorm:"size:32;index"`
	Description string         `gorm:"size:1024"`
	ImageURL    string         `gorm:"size:512"`
	Tags        datatypes.JSON `gorm:"type:jsonb"` // ordered list of tag strings
	Dimensions  string         `gorm:"size:64"`    // nominal output size, e.g. "A4", "1080x1080"
}

// Export records one finished (or failed) export artifact so the client
// can re-download it later.
type Export struct {
	gorm.Model
	SessionID string `gorm:"size:64;index"`
	Kind      string `gorm:"size:16"` // "image" or "pdf"
	Filename  string `gorm:"size:255"`
	ObjectKey string `gorm:"size:512"`
	Status    string `gorm:"size:32"` // pending / completed / failed
	ErrorCode int
}
