package atlas

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Post("/import/gedcom", ImportGedcomHandler)
	r.Post("/import/csv", ImportCSVHandler)
	r.Post("/geocode", GeocodeHandler)

	r.Get("/members", ListMembersHandler)
	r.Get("/members/{id}", GetMemberHandler)
	r.Post("/members", CreateMemberHandler)
	r.Patch("/members/{id}", UpdateMemberHandler)
	r.Delete("/members/{id}", DeleteMemberHandler)

	r.Get("/locations", ListLocationsHandler)
	r.Get("/locations/bounds", LocationsInBoundsHandler)
	r.Get("/locations/{id}", GetLocationHandler)
	r.Post("/locations", CreateLocationHandler)
	r.Delete("/locations/{id}", DeleteLocationHandler)

	r.Get("/events", ListEventsHandler)
	r.Get("/events/timeline", EventsTimelineHandler)
	r.Get("/events/member/{memberId}", EventsByMemberHandler)
	r.Get("/events/location/{locationId}", EventsByLocationHandler)
	r.Get("/events/{id}", GetEventHandler)
	r.Post("/events", CreateEventHandler)
	r.Delete("/events/{id}", DeleteEventHandler)

	r.Get("/stories", ListStoriesHandler)
	r.Get("/stories/{id}", GetStoryHandler)
	r.Post("/stories", CreateStoryHandler)
	r.Post("/stories/generate", GenerateStoryHandler)
	r.Delete("/stories/{id}", DeleteStoryHandler)

	return r
}
