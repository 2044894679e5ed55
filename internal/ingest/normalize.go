package ingest

import "github.com/FamilyAtlas/FA-Backend/internal/gedcom"

// NormalizeIndividual maps a parsed GEDCOM individual into the canonical
// PersonRecord shape. The xref id becomes the origin-scoped identifier.
func NormalizeIndividual(ind gedcom.Individual) PersonRecord {
	rec := PersonRecord{
		ID:         ind.ID,
		Name:       ind.Name,
		BirthDate:  ind.BirthDate,
		BirthPlace: ind.BirthPlace,
		DeathDate:  ind.DeathDate,
		DeathPlace: ind.DeathPlace,
		Notes:      ind.Notes,
	}
	rec.Precursors = synthesizePrecursors(rec)
	return rec
}

// NormalizeGedcom runs the parser and normalizes every emitted individual,
// preserving file order. Skipped lines are surfaced through the returned
// parse result so upload responses can count them.
func NormalizeGedcom(res gedcom.Result) []PersonRecord {
	records := make([]PersonRecord, 0, len(res.Individuals))
	for _, ind := range res.Individuals {
		records = append(records, NormalizeIndividual(ind))
	}
	return records
}
