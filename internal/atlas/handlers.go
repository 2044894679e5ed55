package atlas

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/FamilyAtlas/FA-Backend/internal/db"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func createError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrDuplicate) {
		http.Error(w, "Duplicate id", http.StatusConflict)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// --- Members ---

func ListMembersHandler(w http.ResponseWriter, r *http.Request) {
	var members []Member
	if err := db.DB.Find(&members).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Locale-aware name order so the member list reads like an index.
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(members, func(i, j int) bool {
		return c.CompareString(members[i].Name, members[j].Name) < 0
	})

	writeJSON(w, members)
}

func GetMemberHandler(w http.ResponseWriter, r *http.Request) {
	var member Member
	if err := db.DB.First(&member, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Error(w, "Member not found", http.StatusNotFound)
		return
	}
	writeJSON(w, member)
}

func CreateMemberHandler(w http.ResponseWriter, r *http.Request) {
	var member Member
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if member.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	if err := mapErr(db.DB.Create(&member).Error); err != nil {
		createError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, member)
}

func UpdateMemberHandler(w http.ResponseWriter, r *http.Request) {
	var existing Member
	if err := db.DB.First(&existing, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Error(w, "Member not found", http.StatusNotFound)
		return
	}

	var patch Member
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	patch.ID = existing.ID

	if err := db.DB.Model(&existing).Updates(patch).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, existing)
}

func DeleteMemberHandler(w http.ResponseWriter, r *http.Request) {
	res := db.DB.Delete(&Member{}, "id = ?", chi.URLParam(r, "id"))
	if res.Error != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Member not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Locations ---

func ListLocationsHandler(w http.ResponseWriter, r *http.Request) {
	var locations []Location
	if err := db.DB.Find(&locations).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, locations)
}

func GetLocationHandler(w http.ResponseWriter, r *http.Request) {
	var location Location
	if err := db.DB.First(&location, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, location)
}

func CreateLocationHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Location
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Lat == nil || input.Lng == nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	location := input.Location
	location.Lat = *input.Lat
	location.Lng = *input.Lng
	if location.ID == "" {
		location.ID = uuid.NewString()
	}
	if location.MemberCount == 0 {
		location.MemberCount = 1
	}

	if err := mapErr(db.DB.Create(&location).Error); err != nil {
		createError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, location)
}

func DeleteLocationHandler(w http.ResponseWriter, r *http.Request) {
	res := db.DB.Delete(&Location{}, "id = ?", chi.URLParam(r, "id"))
	if res.Error != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LocationsInBoundsHandler answers the map viewport query:
// /locations/bounds?minLat=&maxLat=&minLng=&maxLng=
func LocationsInBoundsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bounds := make(map[string]float64, 4)
	for _, key := range []string{"minLat", "maxLat", "minLng", "maxLng"} {
		v, err := strconv.ParseFloat(q.Get(key), 64)
		if err != nil {
			http.Error(w, "Missing or invalid bounds parameter", http.StatusBadRequest)
			return
		}
		bounds[key] = v
	}

	var locations []Location
	err := db.DB.
		Where("lat BETWEEN ? AND ?", bounds["minLat"], bounds["maxLat"]).
		Where("lng BETWEEN ? AND ?", bounds["minLng"], bounds["maxLng"]).
		Find(&locations).Error
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, locations)
}

// --- Events ---

func ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	var events []LifeEvent
	if err := db.DB.Order("created_at").Find(&events).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, events)
}

func GetEventHandler(w http.ResponseWriter, r *http.Request) {
	var event LifeEvent
	if err := db.DB.First(&event, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	writeJSON(w, event)
}

func CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var event LifeEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if event.MemberID == "" || event.LocationID == "" || event.EventType == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := mapErr(db.DB.Create(&event).Error); err != nil {
		createError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, event)
}

func DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	res := db.DB.Delete(&LifeEvent{}, "id = ?", chi.URLParam(r, "id"))
	if res.Error != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func EventsByMemberHandler(w http.ResponseWriter, r *http.Request) {
	var events []LifeEvent
	err := db.DB.Order("created_at").
		Find(&events, "member_id = ?", chi.URLParam(r, "memberId")).Error
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, events)
}

func EventsByLocationHandler(w http.ResponseWriter, r *http.Request) {
	var events []LifeEvent
	err := db.DB.Order("created_at").
		Find(&events, "location_id = ?", chi.URLParam(r, "locationId")).Error
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, events)
}

// EventsTimelineHandler filters events by parsed year for the timeline
// scrubber: /events/timeline?from=1900&to=1950. Input order is preserved.
func EventsTimelineHandler(w http.ResponseWriter, r *http.Request) {
	from, err1 := strconv.Atoi(r.URL.Query().Get("from"))
	to, err2 := strconv.Atoi(r.URL.Query().Get("to"))
	if err1 != nil || err2 != nil || from > to {
		http.Error(w, "Missing or invalid year range", http.StatusBadRequest)
		return
	}

	var events []LifeEvent
	if err := db.DB.Order("created_at").Find(&events).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	filtered := make([]LifeEvent, 0, len(events))
	for _, ev := range events {
		year := parseEventDate(ev.EventDate).Year()
		if year >= from && year <= to {
			filtered = append(filtered, ev)
		}
	}
	writeJSON(w, filtered)
}

// --- Stories ---

func ListStoriesHandler(w http.ResponseWriter, r *http.Request) {
	var stories []Story
	if err := db.DB.Order("created_at").Find(&stories).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stories)
}

func GetStoryHandler(w http.ResponseWriter, r *http.Request) {
	var story Story
	if err := db.DB.First(&story, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		http.Error(w, "Story not found", http.StatusNotFound)
		return
	}
	writeJSON(w, story)
}

func CreateStoryHandler(w http.ResponseWriter, r *http.Request) {
	var story Story
	if err := json.NewDecoder(r.Body).Decode(&story); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if story.Title == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if story.ID == "" {
		story.ID = uuid.NewString()
	}

	if err := mapErr(db.DB.Create(&story).Error); err != nil {
		createError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, story)
}

func DeleteStoryHandler(w http.ResponseWriter, r *http.Request) {
	res := db.DB.Delete(&Story{}, "id = ?", chi.URLParam(r, "id"))
	if res.Error != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Story not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateStoryHandler builds a narrative for the requested members from
// their stored events and persists it as a Story.
func GenerateStoryHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string   `json:"title"`
		MemberIDs   []string `json:"member_ids"`
		LocationIDs []string `json:"location_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.Title == "" || len(input.MemberIDs) == 0 {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var members []Member
	if err := db.DB.Find(&members, "id IN ?", input.MemberIDs).Error; err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(members) == 0 {
		http.Error(w, "Members not found", http.StatusNotFound)
		return
	}

	// Preserve the caller's member order.
	byID := make(map[string]Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	var paragraphs []string
	for _, id := range input.MemberIDs {
		m, ok := byID[id]
		if !ok {
			continue
		}
		events, err := narrativeEventsFor(m.ID)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		paragraphs = append(paragraphs, BuildNarrative(m.Name, m.Notes, events))
	}

	story := Story{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Content:     joinParagraphs(paragraphs),
		MemberIDs:   input.MemberIDs,
		LocationIDs: input.LocationIDs,
	}
	if err := mapErr(db.DB.Create(&story).Error); err != nil {
		createError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, story)
}

// narrativeEventsFor loads a member's events with their place names.
func narrativeEventsFor(memberID string) ([]NarrativeEvent, error) {
	var events []LifeEvent
	err := db.DB.Order("created_at").Find(&events, "member_id = ?", memberID).Error
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(events))
	for _, ev := range events {
		ids = append(ids, ev.LocationID)
	}
	var locations []Location
	if err := db.DB.Find(&locations, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}

	out := make([]NarrativeEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, NarrativeEvent{
			Type:  ev.EventType,
			Date:  ev.EventDate,
			Place: names[ev.LocationID],
		})
	}
	return out, nil
}

func joinParagraphs(ps []string) string {
	out := ""
	for i, p := range ps {
		if i > 0 {
			out += "\n\n"
		}
		out += p
	}
	return out
}
