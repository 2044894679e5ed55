package atlas

import (
	"time"

	"github.com/lib/pq"
)

// Dates stay free text throughout: source files carry strings like
// "12 MAR 1900" or "1900" and nothing downstream needs a calendar type
// except the narrative sort, which parses best-effort.

type Member struct {
	ID         string `gorm:"primaryKey" json:"id"`
	ImportID   string `gorm:"index" json:"import_id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthPlace string `json:"birth_place"`
	DeathDate  string `json:"death_date"`
	DeathPlace string `json:"death_place"`
	Notes      string `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time
}

type Location struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Address      string  `json:"address"`
	LocationType string  `json:"location_type"`
	TimeSpan     string  `json:"time_span"`
	MemberCount  int     `json:"member_count"`
	CreatedAt    time.Time
}

type LifeEvent struct {
	ID          string `gorm:"primaryKey" json:"id"`
	MemberID    string `gorm:"index" json:"member_id"`
	LocationID  string `gorm:"index" json:"location_id"`
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	Description string `json:"description"`
	Notes       string `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time
}

type Story struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Title       string         `json:"title"`
	Content     string         `gorm:"type:text" json:"content"`
	MemberIDs   pq.StringArray `gorm:"type:text[]" json:"member_ids"`
	LocationIDs pq.StringArray `gorm:"type:text[]" json:"location_ids"`
	CreatedAt   time.Time
}

func (Member) TableName() string {
	return "atlas.members"
}

func (Location) TableName() string {
	return "atlas.locations"
}

func (LifeEvent) TableName() string {
	return "atlas.events"
}

func (Story) TableName() string {
	return "atlas.stories"
}
