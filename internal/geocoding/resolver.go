package geocoding

import (
	"context"
	"log"

	"github.com/FamilyAtlas/FA-Backend/internal/ingest"
)

// PlaceResolver adapts the Google client to the ingest.Resolver port.
// Misses and collaborator failures both come back as (nil, nil): the
// pipeline treats absence as "skip this place", never as a batch failure.
type PlaceResolver struct {
	client *Client
}

func NewPlaceResolver(client *Client) *PlaceResolver {
	return &PlaceResolver{client: client}
}

func (r *PlaceResolver) Resolve(ctx context.Context, place string) (*ingest.Point, error) {
	if r.client == nil {
		return nil, nil // no API key configured: every place is a miss
	}

	res, err := r.client.Geocode(ctx, place)
	if err != nil {
		log.Printf("[Geocode] %q: %v", place, err)
		return nil, nil
	}
	if res == nil {
		return nil, nil
	}
	return &ingest.Point{Lat: res.Lat, Lng: res.Lng, Address: res.Formatted}, nil
}
