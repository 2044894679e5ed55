package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/FamilyAtlas/FA-Backend/internal/atlas"
	"github.com/FamilyAtlas/FA-Backend/internal/config"
	"github.com/FamilyAtlas/FA-Backend/internal/db"
	"github.com/FamilyAtlas/FA-Backend/internal/ingest"
)

func main() {
	_ = godotenv.Load(".env.local")

	var (
		path   = flag.String("file", "", "path to a .ged or .csv file")
		format = flag.String("format", "", "gedcom or csv (default: from file extension)")
		dbURL  = flag.String("db", os.Getenv("DATABASE_URL"), "DATABASE_URL")
	)
	flag.Parse()

	if *path == "" || *dbURL == "" {
		flag.Usage()
		os.Exit(2)
	}

	kind := *format
	if kind == "" {
		if strings.HasSuffix(*path, ".csv") {
			kind = "csv"
		} else {
			kind = "gedcom"
		}
	}

	cfg, err := config.Load(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := gorm.Open(postgres.Open(*dbURL), &gorm.Config{})
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}
	db.DB = gdb
	atlas.Init(cfg)

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	pipeline := &ingest.Pipeline{
		Resolver: atlas.Geocoder,
		Store:    atlas.NewStore(gdb),
	}

	var counts ingest.Counts
	if kind == "csv" {
		counts, err = pipeline.RunCSV(context.Background(), f)
	} else {
		counts, err = pipeline.RunGedcom(context.Background(), f)
	}
	if err != nil {
		log.Fatalf("import failed after %+v: %v", counts, err)
	}

	fmt.Printf("imported %d members, %d locations, %d events (%d lines skipped)\n",
		counts.Members, counts.Locations, counts.Events, counts.Skipped)
}
