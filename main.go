package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/FamilyAtlas/FA-Backend/internal/atlas"
	"github.com/FamilyAtlas/FA-Backend/internal/config"
	"github.com/FamilyAtlas/FA-Backend/internal/db"
	"github.com/FamilyAtlas/FA-Backend/internal/middleware"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect()
	atlas.Init(cfg)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	r.Mount("/atlas", atlas.SetupRoutes())

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
