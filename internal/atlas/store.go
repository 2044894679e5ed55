package atlas

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/FamilyAtlas/FA-Backend/internal/ingest"
)

// ErrDuplicate marks a unique-constraint violation so handlers can answer
// 409 instead of a generic 500.
var ErrDuplicate = errors.New("duplicate id")

// Store persists pipeline output through GORM. It implements ingest.Store
// with plain data records so the pipeline never sees the schema.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateMember(ctx context.Context, m ingest.Member) error {
	row := Member{
		ID:         m.ID,
		ImportID:   m.ImportID,
		Name:       m.Name,
		BirthDate:  m.BirthDate,
		BirthPlace: m.BirthPlace,
		DeathDate:  m.DeathDate,
		DeathPlace: m.DeathPlace,
		Notes:      m.Notes,
	}
	return mapErr(s.db.WithContext(ctx).Create(&row).Error)
}

func (s *Store) CreateLocation(ctx context.Context, l ingest.Location) error {
	row := Location{
		ID:           l.ID,
		Name:         l.Name,
		Lat:          l.Lat,
		Lng:          l.Lng,
		Address:      l.Address,
		LocationType: l.LocationType,
		TimeSpan:     l.TimeSpan,
		MemberCount:  l.MemberCount,
	}
	return mapErr(s.db.WithContext(ctx).Create(&row).Error)
}

func (s *Store) CreateEvent(ctx context.Context, e ingest.LifeEvent) error {
	row := LifeEvent{
		ID:          e.ID,
		MemberID:    e.MemberID,
		LocationID:  e.LocationID,
		EventType:   e.EventType,
		EventDate:   e.EventDate,
		Description: e.Description,
		Notes:       e.Notes,
	}
	return mapErr(s.db.WithContext(ctx).Create(&row).Error)
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
