package ingest

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/FamilyAtlas/FA-Backend/internal/gedcom"
)

// Pipeline sequences normalization, place resolution and event
// materialization for one upload. Records are processed strictly in source
// order and each geocode call is awaited before the next; a referenced
// member and location therefore always exist before their event row.
type Pipeline struct {
	Resolver Resolver
	Store    Store
}

func (p *Pipeline) RunGedcom(ctx context.Context, r io.Reader) (Counts, error) {
	res := gedcom.Parse(r)
	return p.materialize(ctx, NormalizeGedcom(res), len(res.Skipped))
}

func (p *Pipeline) RunCSV(ctx context.Context, r io.Reader) (Counts, error) {
	records, skipped := NormalizeCSV(r)
	return p.materialize(ctx, records, len(skipped))
}

func (p *Pipeline) materialize(ctx context.Context, records []PersonRecord, skipped int) (Counts, error) {
	counts := Counts{Skipped: skipped}

	for _, rec := range records {
		m := Member{
			ID:         uuid.NewString(),
			ImportID:   rec.ID,
			Name:       rec.Name,
			BirthDate:  rec.BirthDate,
			BirthPlace: rec.BirthPlace,
			DeathDate:  rec.DeathDate,
			DeathPlace: rec.DeathPlace,
			Notes:      rec.Notes,
		}
		if err := p.Store.CreateMember(ctx, m); err != nil {
			return counts, fmt.Errorf("creating member %q: %w", rec.Name, err)
		}
		counts.Members++

		for _, pre := range rec.Precursors {
			if pre.Place == "" {
				continue
			}

			// Each (person, role) pair resolves independently; no
			// memoization even for identical place strings.
			pt, err := p.Resolver.Resolve(ctx, pre.Place)
			if err != nil {
				log.Printf("[Ingest] geocode %q: %v", pre.Place, err)
				continue
			}
			if pt == nil {
				continue // no match: silently drop this (person, place) pair
			}

			loc := Location{
				ID:           uuid.NewString(),
				Name:         pre.Place,
				Lat:          pt.Lat,
				Lng:          pt.Lng,
				Address:      pt.Address,
				LocationType: pre.Role,
				TimeSpan:     pre.Date,
				MemberCount:  1,
			}
			if err := p.Store.CreateLocation(ctx, loc); err != nil {
				return counts, fmt.Errorf("creating location %q: %w", pre.Place, err)
			}
			counts.Locations++

			ev := LifeEvent{
				ID:          uuid.NewString(),
				MemberID:    m.ID,
				LocationID:  loc.ID,
				EventType:   pre.Role,
				EventDate:   pre.Date,
				Description: describe(pre.Role, pre.Place),
				Notes:       "",
			}
			if err := p.Store.CreateEvent(ctx, ev); err != nil {
				return counts, fmt.Errorf("creating event for %q: %w", rec.Name, err)
			}
			counts.Events++
		}
	}

	return counts, nil
}

func describe(role, place string) string {
	switch role {
	case "death":
		return fmt.Sprintf("Died in %s", place)
	default:
		return fmt.Sprintf("Born in %s", place)
	}
}
