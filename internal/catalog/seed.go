package catalog

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"craftdeck/internal/database"
	"craftdeck/internal/editor"
)

type seedTemplate struct {
	title       string
	category    editor.Category
	description string
	imageURL    string
	tags        []string
	dimensions  string
}

// Picsum seeds keep the stock imagery consistent but varied.
var seedTemplates = []seedTemplate{
	{
		title:       "Minimalist Executive Resume",
		category:    editor.CategoryResume,
		description: "Clean, whitespace-heavy design suitable for C-level executives.",
		imageURL:    "https://picsum.photos/seed/resume1/600/850",
		tags:        []string{"minimal", "executive", "clean"},
		dimensions:  "A4",
	},
	{
		title:       "Creative Designer CV",
		category:    editor.CategoryResume,
		description: "Bold color blocks and skill bars for creative professionals.",
		imageURL:    "https://picsum.photos/seed/resume2/600/850",
		tags:        []string{"creative", "colorful", "modern"},
		dimensions:  "A4",
	},
	{
		title:       "Academic CV Template",
		category:    editor.CategoryResume,
		description: "Structured layout focused on publications and research.",
		imageURL:    "https://picsum.photos/seed/resume3/600/850",
		tags:        []string{"academic", "formal", "detailed"},
		dimensions:  "Letter",
	},
	{
		title:       "Tech Lead Resume",
		category:    editor.CategoryResume,
		description: "Optimized for ATS systems with a focus on technical skills stack.",
		imageURL:    "https://picsum.photos/seed/resume4/600/850",
		tags:        []string{"tech", "ats-friendly", "developer"},
		dimensions:  "A4",
	},
	{
		title:       "Recent Graduate Entry",
		category:    editor.CategoryResume,
		description: "Focuses on education and projects for those with less experience.",
		imageURL:    "https://picsum.photos/seed/resume5/600/850",
		tags:        []string{"student", "internship", "entry-level"},
		dimensions:  "A4",
	},
	{
		title:       "Modern Tech Business Card",
		category:    editor.CategoryBusinessCard,
		description: "Sleek dark mode design with QR code placeholder.",
		imageURL:    "https://picsum.photos/seed/bizcard1/600/350",
		tags:        []string{"tech", "dark", "modern"},
		dimensions:  `3.5" x 2"`,
	},
	{
		title:       "Floral Boutique Card",
		category:    editor.CategoryBusinessCard,
		description: "Elegant floral patterns for lifestyle brands.",
		imageURL:    "https://picsum.photos/seed/bizcard2/600/350",
		tags:        []string{"floral", "elegant", "soft"},
		dimensions:  `3.5" x 2"`,
	},
	{
		title:       "Corporate Minimalist",
		category:    editor.CategoryBusinessCard,
		description: "Trustworthy blue and white design for finance.",
		imageURL:    "https://picsum.photos/seed/bizcard3/600/350",
		tags:        []string{"corporate", "finance", "trust"},
		dimensions:  `3.5" x 2"`,
	},
	{
		title:       "Real Estate Agent",
		category:    editor.CategoryBusinessCard,
		description: "Features a headshot placeholder and gold accents.",
		imageURL:    "https://picsum.photos/seed/bizcard4/600/350",
		tags:        []string{"real-estate", "gold", "luxury"},
		dimensions:  `3.5" x 2"`,
	},
	{
		title:       "Freelance Writer",
		category:    editor.CategoryBusinessCard,
		description: "Typewriter font style with textured background.",
		imageURL:    "https://picsum.photos/seed/bizcard5/600/350",
		tags:        []string{"retro", "writer", "creative"},
		dimensions:  `3.5" x 2"`,
	},
	{
		title:       "Instagram Product Launch",
		category:    editor.CategorySocialMedia,
		description: "High energy layout for announcing new products.",
		imageURL:    "https://picsum.photos/seed/insta1/800/800",
		tags:        []string{"instagram", "square", "marketing"},
		dimensions:  "1080x1080",
	},
	{
		title:       "Event Poster / Story",
		category:    editor.CategorySocialMedia,
		description: "Vertical layout for stories and event announcements.",
		imageURL:    "https://picsum.photos/seed/insta2/600/1067",
		tags:        []string{"story", "event", "vertical"},
		dimensions:  "1080x1920",
	},
	{
		title:       "Motivational Quote Layout",
		category:    editor.CategorySocialMedia,
		description: "Typography focused design for quotes.",
		imageURL:    "https://picsum.photos/seed/insta3/800/800",
		tags:        []string{"quote", "typography", "clean"},
		dimensions:  "1080x1080",
	},
	{
		title:       "YouTube Thumbnail Pack",
		category:    editor.CategorySocialMedia,
		description: "High contrast text and expressive face placeholders.",
		imageURL:    "https://picsum.photos/seed/yt1/800/450",
		tags:        []string{"youtube", "bold", "clickbait"},
		dimensions:  "1280x720",
	},
	{
		title:       "LinkedIn Carousel Slide",
		category:    editor.CategorySocialMedia,
		description: "Professional layout for educational carousel posts.",
		imageURL:    "https://picsum.photos/seed/linkedin1/800/800",
		tags:        []string{"linkedin", "educational", "carousel"},
		dimensions:  "1080x1080",
	},
	{
		title:       "Office Collaboration",
		category:    editor.CategoryProfessionalPhoto,
		description: "Diverse team working together on a whiteboard.",
		imageURL:    "https://picsum.photos/seed/photo1/800/500",
		tags:        []string{"team", "office", "diverse"},
		dimensions:  "High Res",
	},
	{
		title:       "Modern Workspace Setup",
		category:    editor.CategoryProfessionalPhoto,
		description: "Clean desk setup with laptop and coffee.",
		imageURL:    "https://picsum.photos/seed/photo2/800/500",
		tags:        []string{"desk", "tech", "clean"},
		dimensions:  "High Res",
	},
	{
		title:       "Handshake Close-up",
		category:    editor.CategoryProfessionalPhoto,
		description: "Professional handshake in a corporate setting.",
		imageURL:    "https://picsum.photos/seed/photo3/800/500",
		tags:        []string{"business", "deal", "handshake"},
		dimensions:  "High Res",
	},
	{
		title:       "Studio Headshot Background",
		category:    editor.CategoryProfessionalPhoto,
		description: "Soft blurred office background for professional headshots.",
		imageURL:    "https://picsum.photos/seed/photo4/800/500",
		tags:        []string{"background", "blur", "studio"},
		dimensions:  "High Res",
	},
	{
		title:       "Coffee Shop Meeting",
		category:    editor.CategoryProfessionalPhoto,
		description: "Casual business meeting in a bright cafe.",
		imageURL:    "https://picsum.photos/seed/photo5/800/500",
		tags:        []string{"casual", "meeting", "cafe"},
		dimensions:  "High Res",
	},
}

// Seed inserts the stock templates when the catalog table is empty. It is
// idempotent across restarts: a non-empty catalog is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&database.Template{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range seedTemplates {
		tags, err := json.Marshal(s.tags)
		if err != nil {
			return fmt.Errorf("marshal tags for %q: %w", s.title, err)
		}
		row := database.Template{
			Title:       s.title,
			Category:    string(s.category),
			Description: s.description,
			ImageURL:    s.imageURL,
			Tags:        tags,
			Dimensions:  s.dimensions,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("seed template %q: %w", s.title, err)
		}
	}
	return nil
}
