package ingest

import "context"

// Point is a successful geocode result.
type Point struct {
	Lat     float64
	Lng     float64
	Address string
}

// Resolver turns a free-text place into coordinates. A (nil, nil) return
// means no match; callers skip downstream event creation for that place.
type Resolver interface {
	Resolve(ctx context.Context, place string) (*Point, error)
}

// Store receives the entities a pipeline run produces. Constructed at
// process start and injected; the pipeline never touches persistence
// directly.
type Store interface {
	CreateMember(ctx context.Context, m Member) error
	CreateLocation(ctx context.Context, l Location) error
	CreateEvent(ctx context.Context, e LifeEvent) error
}
