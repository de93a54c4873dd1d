package editor

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned for strings outside the category set.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the fixed set of template categories. The variant a session
// edits (structured document vs. free-form image) is decided by category
// at open time and fixed for the session's lifetime.
type Category string

const (
	CategoryResume            Category = "resume"
	CategoryBusinessCard      Category = "business_card"
	CategorySocialMedia       Category = "social_media"
	CategoryProfessionalPhoto Category = "professional_photo"
)

// ParseCategory maps a wire string onto the category set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryResume, CategoryBusinessCard, CategorySocialMedia, CategoryProfessionalPhoto:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// IsDocument reports whether the category edits a structured document
// rather than an image with overlays.
func (c Category) IsDocument() bool {
	switch c {
	case CategoryResume, CategoryBusinessCard:
		return true
	case CategorySocialMedia, CategoryProfessionalPhoto:
		return false
	}
	return false
}

// DisplayName returns the catalog-facing label.
func (c Category) DisplayName() string {
	switch c {
	case CategoryResume:
		return "Resume"
	case CategoryBusinessCard:
		return "Business Card"
	case CategorySocialMedia:
		return "Social Media"
	case CategoryProfessionalPhoto:
		return "Professional Photos"
	}
	return string(c)
}
