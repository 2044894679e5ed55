package atlas

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/FamilyAtlas/FA-Backend/internal/db"
	"github.com/FamilyAtlas/FA-Backend/internal/ingest"
)

// Set by Init.
var (
	Geocoder       ingest.Resolver
	MaxUploadBytes int64 = 50 << 20
)

func ImportGedcomHandler(w http.ResponseWriter, r *http.Request) {
	importFile(w, r, "gedcom")
}

func ImportCSVHandler(w http.ResponseWriter, r *http.Request) {
	importFile(w, r, "csv")
}

// importFile runs one upload end to end, synchronously: parse, normalize,
// geocode each place in order, store. Counts already created are reported
// even when a later store write fails; nothing rolls back.
func importFile(w http.ResponseWriter, r *http.Request, kind string) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	log.Printf("[Import] %s upload %q (%d bytes)", kind, header.Filename, header.Size)

	pipeline := &ingest.Pipeline{
		Resolver: Geocoder,
		Store:    NewStore(db.DB),
	}

	var counts ingest.Counts
	if kind == "gedcom" {
		counts, err = pipeline.RunGedcom(r.Context(), file)
	} else {
		counts, err = pipeline.RunCSV(r.Context(), file)
	}
	if err != nil {
		log.Printf("[Import] %s failed after %+v: %v", kind, counts, err)
		http.Error(w, "Import failed", http.StatusInternalServerError)
		return
	}

	log.Printf("[Import] %s done: %+v", kind, counts)
	writeJSON(w, counts)
}

// GeocodeHandler resolves a single free-text address for the map UI.
func GeocodeHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Address == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pt, err := Geocoder.Resolve(r.Context(), input.Address)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if pt == nil {
		http.Error(w, "No match found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]float64{"lat": pt.Lat, "lng": pt.Lng})
}
