package gedcom

// EventType tags the life events recognized inside INDI and FAM blocks.
type EventType string

const (
	EventBirth     EventType = "birth"
	EventDeath     EventType = "death"
	EventMarriage  EventType = "marriage"
	EventResidence EventType = "residence"
)

// Event is a date/place pair accumulated under a BIRT/DEAT/MARR/RESI tag.
// OwnerID is the cross-reference id of the enclosing individual or family.
type Event struct {
	Type    EventType `json:"type"`
	Date    string    `json:"date"`
	Place   string    `json:"place"`
	OwnerID string    `json:"owner_id"`
}

type Individual struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	BirthDate  string   `json:"birth_date"`
	BirthPlace string   `json:"birth_place"`
	DeathDate  string   `json:"death_date"`
	DeathPlace string   `json:"death_place"`
	Notes      string   `json:"notes"`
	Events     []*Event `json:"events"`
}

type Family struct {
	ID            string   `json:"id"`
	HusbandID     string   `json:"husband_id"`
	WifeID        string   `json:"wife_id"`
	ChildIDs      []string `json:"child_ids"`
	MarriageDate  string   `json:"marriage_date"`
	MarriagePlace string   `json:"marriage_place"`
}

// SkippedLine reports a line the parser tolerated but could not use, so
// callers can assert on what was dropped instead of inferring it from
// missing output.
type SkippedLine struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Result is everything one pass over a GEDCOM file produces. Dangling
// HUSB/WIFE/CHIL references are not validated.
type Result struct {
	Individuals []Individual
	Families    []Family
	Events      []*Event
	Skipped     []SkippedLine
}
