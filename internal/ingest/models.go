package ingest

// PersonRecord is the canonical shape both input formats normalize into.
// Immutable once built; the pipeline run that produced it owns it until it
// is handed to the store.
type PersonRecord struct {
	ID         string // origin-scoped: GEDCOM xref id or synthetic row index
	Name       string
	BirthDate  string // free text, never parsed to a calendar type
	BirthPlace string
	DeathDate  string
	DeathPlace string
	Notes      string
	Precursors []EventPrecursor
}

// EventPrecursor marks a (role, date, place) triple that may become a
// LifeEvent once its place resolves. Synthesized whenever the role's date
// or place is non-empty; a date-only precursor never materializes.
type EventPrecursor struct {
	Role  string // "birth" or "death"
	Date  string
	Place string
}

// SkippedRow reports a CSV row the normalizer dropped.
type SkippedRow struct {
	Number int
	Reason string
}

// Plain data records handed to the Store; the persistence layer maps them
// to whatever schema it keeps.

type Member struct {
	ID         string
	ImportID   string // origin-scoped id from the source file, if any
	Name       string
	BirthDate  string
	BirthPlace string
	DeathDate  string
	DeathPlace string
	Notes      string
}

type Location struct {
	ID           string
	Name         string // the input place string, used as display name
	Lat          float64
	Lng          float64
	Address      string
	LocationType string // role that triggered resolution
	TimeSpan     string // the role's date string, possibly empty
	MemberCount  int    // always 1; the display layer reads it as authoritative
}

type LifeEvent struct {
	ID          string
	MemberID    string
	LocationID  string
	EventType   string
	EventDate   string
	Description string
	Notes       string
}

// Counts summarizes one upload for the response body.
type Counts struct {
	Members   int `json:"members"`
	Locations int `json:"locations"`
	Events    int `json:"events"`
	Skipped   int `json:"skipped"`
}
