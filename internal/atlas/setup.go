package atlas

import (
	"log"

	"github.com/FamilyAtlas/FA-Backend/internal/config"
	"github.com/FamilyAtlas/FA-Backend/internal/db"
	"github.com/FamilyAtlas/FA-Backend/internal/geocoding"
)

func Init(cfg *config.Config) {
	// Ensure the atlas schema exists first
	if err := db.EnsureSchema(db.DB, "atlas"); err != nil {
		log.Fatal("Failed to create atlas schema: ", err)
	}

	if err := db.DB.AutoMigrate(&Member{}, &Location{}, &LifeEvent{}, &Story{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	client := geocoding.NewClient(cfg.Geocoder.APIKey, cfg.Geocoder.RatePerSecond)
	if client == nil {
		log.Printf("[atlas] WARNING: no geocoder API key set; imported places will not resolve")
	}
	Geocoder = geocoding.NewPlaceResolver(client)
	MaxUploadBytes = cfg.MaxUploadBytes
}
