package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/datatypes"

	"craftdeck/internal/catalog"
	"craftdeck/internal/config"
	"craftdeck/internal/database"
	"craftdeck/internal/editor"
)

// admin maintains the template catalog from the command line: seeding the
// stock set and registering additional templates.
func main() {
	var (
		seed        = flag.Bool("seed", false, "insert the stock template set (idempotent)")
		title       = flag.String("title", "", "title of a template to register")
		category    = flag.String("category", "", "template category (resume|business_card|social_media|professional_photo)")
		description = flag.String("description", "", "template description")
		imageURL    = flag.String("image-url", "", "source image URL")
		tags        = flag.String("tags", "", "comma-separated tag list")
		dimensions  = flag.String("dimensions", "", "nominal output size, e.g. A4 or 1080x1080")
	)
	flag.Parse()

	if !*seed && *title == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad()
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := db.AutoMigrate(&database.Template{}, &database.Export{}); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	if *seed {
		if err := catalog.Seed(db); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		fmt.Println("catalog seeded")
	}

	if *title == "" {
		return
	}

	if _, err := editor.ParseCategory(*category); err != nil {
		log.Fatalf("invalid category: %v", err)
	}
	if *imageURL == "" {
		log.Fatal("image-url is required when registering a template")
	}

	var tagList []string
	for _, tag := range strings.Split(*tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tagList = append(tagList, tag)
		}
	}
	tagJSON, err := json.Marshal(tagList)
	if err != nil {
		log.Fatalf("encode tags: %v", err)
	}

	tpl := database.Template{
		Title:       *title,
		Category:    *category,
		Description: *description,
		ImageURL:    *imageURL,
		Tags:        datatypes.JSON(tagJSON),
		Dimensions:  *dimensions,
	}
	if err := db.Create(&tpl).Error; err != nil {
		log.Fatalf("create template: %v", err)
	}
	fmt.Printf("registered template %d (%s)\n", tpl.ID, tpl.Title)
}
